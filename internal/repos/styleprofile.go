package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type StyleProfileRepo interface {
  GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error)
  // ApplyUpdate folds the engine increments into the stored arena as one
  // atomic operation: the row is created if missing, locked FOR UPDATE,
  // merged, counters advanced and confidence recomputed. Concurrent calls
  // for the same user serialize on the row lock and never lose increments.
  ApplyUpdate(ctx context.Context, userID uuid.UUID, update scoring.Update, now time.Time) (*types.StyleProfile, error)
  // ScaleLayers multiplies every layer score by factor under the same row
  // lock. Used by the decay batch.
  ScaleLayers(ctx context.Context, userID uuid.UUID, factor float64) error
  ListUserIDs(ctx context.Context, tx *gorm.DB, offset, limit int) ([]uuid.UUID, error)
}

type styleProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewStyleProfileRepo(db *gorm.DB, baseLog *logger.Logger) StyleProfileRepo {
  repoLog := baseLog.With("repo", "StyleProfileRepo")
  return &styleProfileRepo{db: db, log: repoLog}
}

func (r *styleProfileRepo) ensureRow(tx *gorm.DB, userID uuid.UUID) error {
  return tx.Clauses(clause.OnConflict{
    Columns:   []clause.Column{{Name: "user_id"}},
    DoNothing: true,
  }).Create(&types.StyleProfile{UserID: userID}).Error
}

func (r *styleProfileRepo) GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  transaction = transaction.WithContext(ctx)
  if err := r.ensureRow(transaction, userID); err != nil {
    return nil, err
  }

  var profile types.StyleProfile
  if err := transaction.Where("user_id = ?", userID).First(&profile).Error; err != nil {
    return nil, err
  }
  return &profile, nil
}

func (r *styleProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var profile types.StyleProfile
  if err := transaction.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
    return nil, err
  }
  return &profile, nil
}

func (r *styleProfileRepo) ApplyUpdate(ctx context.Context, userID uuid.UUID, update scoring.Update, now time.Time) (*types.StyleProfile, error) {
  var out types.StyleProfile

  err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if err := r.ensureRow(tx, userID); err != nil {
      return err
    }

    var profile types.StyleProfile
    if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
      Where("user_id = ?", userID).
      First(&profile).Error; err != nil {
      return err
    }

    layers, err := profile.DecodeLayers()
    if err != nil {
      return err
    }
    layers.Add(update.Deltas)
    if err := profile.EncodeLayers(layers); err != nil {
      return err
    }

    profile.TotalEvents++
    profile.Confidence = scoring.ConfidenceForEvents(profile.TotalEvents)
    profile.CommerceIntent += update.CommerceIntentDelta
    profile.LastEventAt = &now

    if err := tx.Model(&types.StyleProfile{}).
      Where("user_id = ?", userID).
      Updates(map[string]interface{}{
        "layers":          profile.Layers,
        "commerce_intent": profile.CommerceIntent,
        "confidence":      profile.Confidence,
        "total_events":    profile.TotalEvents,
        "last_event_at":   profile.LastEventAt,
      }).Error; err != nil {
      return err
    }

    out = profile
    return nil
  })
  if err != nil {
    return nil, err
  }
  return &out, nil
}

func (r *styleProfileRepo) ScaleLayers(ctx context.Context, userID uuid.UUID, factor float64) error {
  return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    var profile types.StyleProfile
    if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
      Where("user_id = ?", userID).
      First(&profile).Error; err != nil {
      return err
    }

    layers, err := profile.DecodeLayers()
    if err != nil {
      return err
    }
    layers.Scale(factor)
    if err := profile.EncodeLayers(layers); err != nil {
      return err
    }

    return tx.Model(&types.StyleProfile{}).
      Where("user_id = ?", userID).
      Update("layers", profile.Layers).Error
  })
}

func (r *styleProfileRepo) ListUserIDs(ctx context.Context, tx *gorm.DB, offset, limit int) ([]uuid.UUID, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var ids []uuid.UUID
  if err := transaction.WithContext(ctx).
    Model(&types.StyleProfile{}).
    Order("created_at ASC").
    Offset(offset).
    Limit(limit).
    Pluck("user_id", &ids).Error; err != nil {
    return nil, err
  }
  return ids, nil
}
