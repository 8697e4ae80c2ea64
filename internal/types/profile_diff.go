package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileDiff is an append-only before/after pair captured around a mutating
// operation on the shopper/preference mirror, for audit.
type ProfileDiff struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_profile_diff_user" json:"user_id"`

	Before datatypes.JSON `gorm:"column:before_profile;type:jsonb" json:"before"`
	After  datatypes.JSON `gorm:"column:after_profile;type:jsonb" json:"after"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (ProfileDiff) TableName() string { return "profile_diff" }
