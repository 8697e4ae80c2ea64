package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type ProfileDiffRepo interface {
  Create(ctx context.Context, tx *gorm.DB, diff *types.ProfileDiff) error
}

type profileDiffRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileDiffRepo(db *gorm.DB, baseLog *logger.Logger) ProfileDiffRepo {
  repoLog := baseLog.With("repo", "ProfileDiffRepo")
  return &profileDiffRepo{db: db, log: repoLog}
}

func (r *profileDiffRepo) Create(ctx context.Context, tx *gorm.DB, diff *types.ProfileDiff) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).Create(diff).Error
}
