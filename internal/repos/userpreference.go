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

type UserPreferenceRepo interface {
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreference, error)
  Upsert(ctx context.Context, tx *gorm.DB, preference *types.UserPreference) (*types.UserPreference, error)
}

type userPreferenceRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) UserPreferenceRepo {
  repoLog := baseLog.With("repo", "UserPreferenceRepo")
  return &userPreferenceRepo{db: db, log: repoLog}
}

func (r *userPreferenceRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreference, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var preference types.UserPreference
  err := transaction.WithContext(ctx).Where("user_id = ?", userID).First(&preference).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &preference, nil
}

func (r *userPreferenceRepo) Upsert(ctx context.Context, tx *gorm.DB, preference *types.UserPreference) (*types.UserPreference, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if err := transaction.WithContext(ctx).Clauses(clause.OnConflict{
    Columns: []clause.Column{{Name: "user_id"}},
    DoUpdates: clause.AssignmentColumns([]string{
      "preferred_colors", "preferred_styles", "preferred_categories",
      "avoided_materials", "fit_preferences", "occasions", "updated_at",
    }),
  }).Create(preference).Error; err != nil {
    return nil, err
  }
  return preference, nil
}
