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

type ProfileVersionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, version *types.ProfileVersion) (*types.ProfileVersion, error)
  // GetForUser returns apperr.ErrNotFound when the version does not exist or
  // belongs to a different user.
  GetForUser(ctx context.Context, tx *gorm.DB, versionID, userID uuid.UUID) (*types.ProfileVersion, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ProfileVersion, error)
  CreateRestoreAudit(ctx context.Context, tx *gorm.DB, audit *types.ProfileRestoreAudit) error
}

type profileVersionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProfileVersionRepo(db *gorm.DB, baseLog *logger.Logger) ProfileVersionRepo {
  repoLog := baseLog.With("repo", "ProfileVersionRepo")
  return &profileVersionRepo{db: db, log: repoLog}
}

func (r *profileVersionRepo) Create(ctx context.Context, tx *gorm.DB, version *types.ProfileVersion) (*types.ProfileVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Create(version).Error; err != nil {
    return nil, err
  }
  return version, nil
}

func (r *profileVersionRepo) GetForUser(ctx context.Context, tx *gorm.DB, versionID, userID uuid.UUID) (*types.ProfileVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var version types.ProfileVersion
  err := transaction.WithContext(ctx).
    Where("id = ? AND user_id = ?", versionID, userID).
    First(&version).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &version, nil
}

func (r *profileVersionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.ProfileVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if limit <= 0 {
    limit = 20
  }

  var results []*types.ProfileVersion
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(limit).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *profileVersionRepo) CreateRestoreAudit(ctx context.Context, tx *gorm.DB, audit *types.ProfileRestoreAudit) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).Create(audit).Error
}
