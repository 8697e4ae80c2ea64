package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SnapshotReasonWeekly = "weekly"
	SnapshotReasonManual = "manual"
)

// StyleProfileSnapshot is an append-only point-in-time copy of a profile's
// layer arena and scalars, used for trend inspection.
type StyleProfileSnapshot struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_style_profile_snapshot_user" json:"user_id"`

	Layers         datatypes.JSON `gorm:"column:layers;type:jsonb" json:"layers,omitempty"`
	CommerceIntent float64        `gorm:"column:commerce_intent;not null;default:0" json:"commerce_intent"`
	Confidence     float64        `gorm:"column:confidence;not null;default:0" json:"confidence"`
	TotalEvents    int64          `gorm:"column:total_events;not null;default:0" json:"total_events"`

	Reason string `gorm:"column:reason;not null" json:"reason"` // weekly|manual

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (StyleProfileSnapshot) TableName() string { return "style_profile_snapshot" }
