package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type ShopperProfileRepo interface {
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ShopperProfile, error)
  Upsert(ctx context.Context, tx *gorm.DB, profile *types.ShopperProfile) (*types.ShopperProfile, error)
}

type shopperProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewShopperProfileRepo(db *gorm.DB, baseLog *logger.Logger) ShopperProfileRepo {
  repoLog := baseLog.With("repo", "ShopperProfileRepo")
  return &shopperProfileRepo{db: db, log: repoLog}
}

func (r *shopperProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ShopperProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var profile types.ShopperProfile
  err := transaction.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &profile, nil
}

func (r *shopperProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, profile *types.ShopperProfile) (*types.ShopperProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "user_id"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "favorite_categories", "common_sizes", "price_range", "interests",
      "total_orders_analyzed", "total_items_purchased", "total_spent_cents",
      "average_order_value_cents", "last_analyzed_at", "updated_at",
    }),
  }).Create(profile).Error; err != nil {
    return nil, err
  }
  return profile, nil
}
