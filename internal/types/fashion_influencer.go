package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FashionInfluencer is the catalog row the influencer metadata provider
// reads. Analysis pipelines own the write side.
type FashionInfluencer struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username string    `gorm:"column:username;not null;uniqueIndex:idx_fashion_influencer_username" json:"username"`

	StyleArchetype         string  `gorm:"column:style_archetype" json:"style_archetype,omitempty"`
	PriceTier              string  `gorm:"column:price_tier" json:"price_tier,omitempty"`
	CategoryFocus          string  `gorm:"column:category_focus" json:"category_focus,omitempty"`
	CommerceReadinessScore float64 `gorm:"column:commerce_readiness_score;not null;default:0" json:"commerce_readiness_score"`

	AestheticTags datatypes.JSON `gorm:"column:aesthetic_tags;type:jsonb" json:"aesthetic_tags,omitempty"`
	FollowerCount int64          `gorm:"column:follower_count;not null;default:0" json:"follower_count"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (FashionInfluencer) TableName() string { return "fashion_influencer" }
