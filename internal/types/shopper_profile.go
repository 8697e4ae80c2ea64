package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShopperProfile is the narrow shopping-behavior mirror (favorite
// categories, sizes, price range) fed by order analysis and chat preference
// ingestion. It is versioned by ProfileVersion, unlike the layer arena.
type ShopperProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shopper_profile_user" json:"user_id"`

	FavoriteCategories datatypes.JSON `gorm:"column:favorite_categories;type:jsonb" json:"favorite_categories,omitempty"` // {"dresses": 5}
	CommonSizes        datatypes.JSON `gorm:"column:common_sizes;type:jsonb" json:"common_sizes,omitempty"`
	PriceRange         datatypes.JSON `gorm:"column:price_range;type:jsonb" json:"price_range,omitempty"` // {"min":..,"max":..,"avg":..} cents
	Interests          datatypes.JSON `gorm:"column:interests;type:jsonb" json:"interests,omitempty"`

	TotalOrdersAnalyzed    int   `gorm:"column:total_orders_analyzed;not null;default:0" json:"total_orders_analyzed"`
	TotalItemsPurchased    int   `gorm:"column:total_items_purchased;not null;default:0" json:"total_items_purchased"`
	TotalSpentCents        int64 `gorm:"column:total_spent_cents;not null;default:0" json:"total_spent_cents"`
	AverageOrderValueCents int64 `gorm:"column:average_order_value_cents;not null;default:0" json:"average_order_value_cents"`

	LastAnalyzedAt *time.Time `gorm:"column:last_analyzed_at" json:"last_analyzed_at,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ShopperProfile) TableName() string { return "shopper_profile" }
