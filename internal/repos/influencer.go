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

type InfluencerRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, influencerID uuid.UUID) (*types.FashionInfluencer, error)
}

type influencerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewInfluencerRepo(db *gorm.DB, baseLog *logger.Logger) InfluencerRepo {
  repoLog := baseLog.With("repo", "InfluencerRepo")
  return &influencerRepo{db: db, log: repoLog}
}

func (r *influencerRepo) GetByID(ctx context.Context, tx *gorm.DB, influencerID uuid.UUID) (*types.FashionInfluencer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var influencer types.FashionInfluencer
  err := transaction.WithContext(ctx).Where("id = ?", influencerID).First(&influencer).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &influencer, nil
}
