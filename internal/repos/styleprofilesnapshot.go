package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type StyleProfileSnapshotRepo interface {
  Create(ctx context.Context, tx *gorm.DB, snapshot *types.StyleProfileSnapshot) (*types.StyleProfileSnapshot, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileSnapshot, error)
}

type styleProfileSnapshotRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStyleProfileSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) StyleProfileSnapshotRepo {
  repoLog := baseLog.With("repo", "StyleProfileSnapshotRepo")
  return &styleProfileSnapshotRepo{db: db, log: repoLog}
}

func (r *styleProfileSnapshotRepo) Create(ctx context.Context, tx *gorm.DB, snapshot *types.StyleProfileSnapshot) (*types.StyleProfileSnapshot, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(snapshot).Error; err != nil {
    return nil, err
  }
  return snapshot, nil
}

func (r *styleProfileSnapshotRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileSnapshot, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 20
  }

  var results []*types.StyleProfileSnapshot
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
