package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type StyleProfileEventRepo interface {
  Append(ctx context.Context, tx *gorm.DB, event *types.StyleProfileEvent) (*types.StyleProfileEvent, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileEvent, error)
  CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type styleProfileEventRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStyleProfileEventRepo(db *gorm.DB, baseLog *logger.Logger) StyleProfileEventRepo {
  repoLog := baseLog.With("repo", "StyleProfileEventRepo")
  return &styleProfileEventRepo{db: db, log: repoLog}
}

func (r *styleProfileEventRepo) Append(ctx context.Context, tx *gorm.DB, event *types.StyleProfileEvent) (*types.StyleProfileEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(event).Error; err != nil {
    return nil, err
  }
  return event, nil
}

func (r *styleProfileEventRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileEvent, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 100
  }

  var results []*types.StyleProfileEvent
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *styleProfileEventRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.StyleProfileEvent{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
