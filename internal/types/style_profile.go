package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vetrina-app/vetrina-backend/internal/scoring"
)

// StyleProfile is the per-user accumulator record. Layers holds the whole
// dimension arena (dimension -> label -> score) as one jsonb column; the row
// is only ever mutated inside a FOR UPDATE transaction.
type StyleProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_style_profile_user" json:"user_id"`

	Layers datatypes.JSON `gorm:"column:layers;type:jsonb" json:"layers,omitempty"`

	CommerceIntent float64 `gorm:"column:commerce_intent;not null;default:0" json:"commerce_intent"`
	Confidence     float64 `gorm:"column:confidence;not null;default:0" json:"confidence"` // 0..1
	TotalEvents    int64   `gorm:"column:total_events;not null;default:0" json:"total_events"`

	LastEventAt *time.Time `gorm:"column:last_event_at;index" json:"last_event_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StyleProfile) TableName() string { return "style_profile" }

// DecodeLayers unmarshals the jsonb arena. A null/empty column decodes to an
// empty arena.
func (p *StyleProfile) DecodeLayers() (scoring.Layers, error) {
	if len(p.Layers) == 0 {
		return scoring.Layers{}, nil
	}
	var layers scoring.Layers
	if err := json.Unmarshal(p.Layers, &layers); err != nil {
		return nil, err
	}
	if layers == nil {
		layers = scoring.Layers{}
	}
	return layers, nil
}

// EncodeLayers marshals the arena back onto the record.
func (p *StyleProfile) EncodeLayers(layers scoring.Layers) error {
	raw, err := json.Marshal(layers)
	if err != nil {
		return err
	}
	p.Layers = datatypes.JSON(raw)
	return nil
}
