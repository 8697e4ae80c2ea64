package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPreference is the explicit fashion-preference record a user curates
// directly (as opposed to the behaviorally accumulated style profile).
type UserPreference struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_preference_user" json:"user_id"`

	PreferredColors     datatypes.JSON `gorm:"column:preferred_colors;type:jsonb" json:"preferred_colors,omitempty"`
	PreferredStyles     datatypes.JSON `gorm:"column:preferred_styles;type:jsonb" json:"preferred_styles,omitempty"`
	PreferredCategories datatypes.JSON `gorm:"column:preferred_categories;type:jsonb" json:"preferred_categories,omitempty"`
	AvoidedMaterials    datatypes.JSON `gorm:"column:avoided_materials;type:jsonb" json:"avoided_materials,omitempty"`
	FitPreferences      datatypes.JSON `gorm:"column:fit_preferences;type:jsonb" json:"fit_preferences,omitempty"`
	Occasions           datatypes.JSON `gorm:"column:occasions;type:jsonb" json:"occasions,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserPreference) TableName() string { return "user_preference" }
