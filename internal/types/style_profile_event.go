package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StyleProfileEvent is one row of the append-only ingestion ledger. Rows are
// immutable once written; Weight is stamped from the event-type table at
// ingestion time and never recomputed.
type StyleProfileEvent struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_style_profile_event_user" json:"user_id"`

	EventType  string    `gorm:"column:event_type;not null" json:"event_type"`
	SourceType string    `gorm:"column:source_type;not null" json:"source_type"` // influencer|product|retailer
	SourceID   uuid.UUID `gorm:"type:uuid;column:source_id" json:"source_id"`
	Weight     float64   `gorm:"column:weight;not null" json:"weight"`

	// MetadataSnapshot preserves the resolved source metadata as seen at
	// ingestion time, for audit and replay.
	MetadataSnapshot datatypes.JSON `gorm:"column:metadata_snapshot;type:jsonb" json:"metadata_snapshot,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (StyleProfileEvent) TableName() string { return "style_profile_event" }
