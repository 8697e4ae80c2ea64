package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	JobRunStatusRunning   = "running"
	JobRunStatusCompleted = "completed"
	JobRunStatusFailed    = "failed"
)

// JobRun is the ledger of batch-job executions. The decay job consults it to
// refuse double-application inside one period.
type JobRun struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobName string    `gorm:"column:job_name;not null;index:idx_job_run_name" json:"job_name"`
	Status  string    `gorm:"column:status;not null" json:"status"` // running|completed|failed

	Detail datatypes.JSON `gorm:"column:detail;type:jsonb" json:"detail,omitempty"`

	StartedAt   time.Time  `gorm:"column:started_at;not null;default:now()" json:"started_at"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (JobRun) TableName() string { return "job_run" }
