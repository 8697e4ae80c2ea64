package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileVersion is an opaque, append-only snapshot of the shopper-profile +
// fashion-preferences mirror, taken around preference-ingestion side effects
// so they can be undone. It deliberately does not cover the style layer
// arena.
type ProfileVersion struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_profile_version_user" json:"user_id"`

	Snapshot datatypes.JSON `gorm:"column:snapshot;type:jsonb;not null" json:"snapshot"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (ProfileVersion) TableName() string { return "profile_version" }

// ProfileRestoreAudit records every restore applied from a ProfileVersion.
type ProfileRestoreAudit struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_profile_restore_audit_user" json:"user_id"`
	VersionID  uuid.UUID  `gorm:"type:uuid;not null" json:"version_id"`
	RestoredBy *uuid.UUID `gorm:"type:uuid" json:"restored_by,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ProfileRestoreAudit) TableName() string { return "profile_restore_audit" }
