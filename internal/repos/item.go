package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type ItemRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error)
}

type itemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
  repoLog := baseLog.With("repo", "ItemRepo")
  return &itemRepo{db: db, log: repoLog}
}

func (r *itemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var item types.Item
  err := transaction.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &item, nil
}
