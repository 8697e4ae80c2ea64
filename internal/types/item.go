package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item is the catalog row the product metadata provider reads. Catalog sync
// owns the write side.
type Item struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name string    `gorm:"column:name;not null" json:"name"`

	Category    string `gorm:"column:category;index" json:"category,omitempty"`
	PriceTier   string `gorm:"column:price_tier" json:"price_tier,omitempty"`
	OccasionTag string `gorm:"column:occasion_tag" json:"occasion_tag,omitempty"`

	StyleTags          datatypes.JSON `gorm:"column:style_tags;type:jsonb" json:"style_tags,omitempty"`
	ColorPalette       string         `gorm:"column:color_palette" json:"color_palette,omitempty"`
	PrimaryMaterial    string         `gorm:"column:primary_material" json:"primary_material,omitempty"`
	SilhouetteType     string         `gorm:"column:silhouette_type" json:"silhouette_type,omitempty"`
	DetailTags         datatypes.JSON `gorm:"column:detail_tags;type:jsonb" json:"detail_tags,omitempty"`
	PatternType        string         `gorm:"column:pattern_type" json:"pattern_type,omitempty"`
	CoverageLevel      string         `gorm:"column:coverage_level" json:"coverage_level,omitempty"`
	SustainabilityTags datatypes.JSON `gorm:"column:sustainability_tags;type:jsonb" json:"sustainability_tags,omitempty"`
	SeasonSuitability  datatypes.JSON `gorm:"column:season_suitability;type:jsonb" json:"season_suitability,omitempty"`

	PriceCents  int64 `gorm:"column:price_cents;not null;default:0" json:"price_cents"`
	IsAvailable bool  `gorm:"column:is_available;not null;default:true" json:"is_available"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Item) TableName() string { return "item" }
