package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// mirrorSnapshot is the versioned unit: the shopper-profile + preference
// mirror, not the style layer arena. Restores therefore never touch layers.
type mirrorSnapshot struct {
  ShopperProfile     *types.ShopperProfile `json:"shopper_profile,omitempty"`
  FashionPreferences *types.UserPreference `json:"fashion_preferences,omitempty"`
}

// ProfileVersionService snapshots and restores the shopper/preference
// mirror around preference-ingestion side effects.
type ProfileVersionService interface {
  Snapshot(ctx context.Context, userID uuid.UUID) (*types.ProfileVersion, error)
  ListVersions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ProfileVersion, error)
  // RestoreVersion overwrites the mirror from a prior version and records a
  // restore audit, all in one transaction. A version id that does not exist
  // for this user is a no-op returning (nil, nil).
  RestoreVersion(ctx context.Context, userID, versionID uuid.UUID, restoredBy *uuid.UUID) (*types.ProfileVersion, error)
}

type profileVersionService struct {
  txRunner       TxRunner
  versionRepo    repos.ProfileVersionRepo
  shopperRepo    repos.ShopperProfileRepo
  preferenceRepo repos.UserPreferenceRepo
  log            *logger.Logger
}

func NewProfileVersionService(
  txRunner TxRunner,
  versionRepo repos.ProfileVersionRepo,
  shopperRepo repos.ShopperProfileRepo,
  preferenceRepo repos.UserPreferenceRepo,
  baseLog *logger.Logger,
) ProfileVersionService {
  svcLog := baseLog.With("service", "ProfileVersionService")
  return &profileVersionService{
    txRunner:       txRunner,
    versionRepo:    versionRepo,
    shopperRepo:    shopperRepo,
    preferenceRepo: preferenceRepo,
    log:            svcLog,
  }
}

// captureMirror reads the current mirror state, tolerating missing rows.
func captureMirror(ctx context.Context, tx *gorm.DB, shopperRepo repos.ShopperProfileRepo, preferenceRepo repos.UserPreferenceRepo, userID uuid.UUID) (datatypes.JSON, error) {
  var snap mirrorSnapshot

  shopper, err := shopperRepo.GetByUserID(ctx, tx, userID)
  if err != nil && !errors.Is(err, apperr.ErrNotFound) {
    return nil, fmt.Errorf("read shopper profile: %w", err)
  }
  snap.ShopperProfile = shopper

  preference, err := preferenceRepo.GetByUserID(ctx, tx, userID)
  if err != nil && !errors.Is(err, apperr.ErrNotFound) {
    return nil, fmt.Errorf("read user preference: %w", err)
  }
  snap.FashionPreferences = preference

  raw, err := json.Marshal(snap)
  if err != nil {
    return nil, fmt.Errorf("encode mirror snapshot: %w", err)
  }
  return datatypes.JSON(raw), nil
}

func (s *profileVersionService) Snapshot(ctx context.Context, userID uuid.UUID) (*types.ProfileVersion, error) {
  raw, err := captureMirror(ctx, nil, s.shopperRepo, s.preferenceRepo, userID)
  if err != nil {
    return nil, err
  }
  version, err := s.versionRepo.Create(ctx, nil, &types.ProfileVersion{
    UserID:   userID,
    Snapshot: raw,
  })
  if err != nil {
    return nil, fmt.Errorf("create profile version: %w", err)
  }
  return version, nil
}

func (s *profileVersionService) ListVersions(ctx context.Context, userID uuid.UUID, limit int) ([]*types.ProfileVersion, error) {
  versions, err := s.versionRepo.ListByUser(ctx, nil, userID, limit)
  if err != nil {
    return nil, fmt.Errorf("list profile versions: %w", err)
  }
  return versions, nil
}

func (s *profileVersionService) RestoreVersion(ctx context.Context, userID, versionID uuid.UUID, restoredBy *uuid.UUID) (*types.ProfileVersion, error) {
  version, err := s.versionRepo.GetForUser(ctx, nil, versionID, userID)
  if err != nil {
    if errors.Is(err, apperr.ErrNotFound) {
      s.log.Warn("restore skipped, version not found for user", "user_id", userID, "version_id", versionID)
      return nil, nil
    }
    return nil, fmt.Errorf("load profile version: %w", err)
  }

  var snap mirrorSnapshot
  if err := json.Unmarshal(version.Snapshot, &snap); err != nil {
    return nil, fmt.Errorf("decode profile version %s: %w", versionID, err)
  }

  err = s.txRunner.RunInTx(ctx, func(tx *gorm.DB) error {
    if snap.ShopperProfile != nil {
      snap.ShopperProfile.UserID = userID
      if _, err := s.shopperRepo.Upsert(ctx, tx, snap.ShopperProfile); err != nil {
        return fmt.Errorf("restore shopper profile: %w", err)
      }
    }
    if snap.FashionPreferences != nil {
      snap.FashionPreferences.UserID = userID
      if _, err := s.preferenceRepo.Upsert(ctx, tx, snap.FashionPreferences); err != nil {
        return fmt.Errorf("restore user preference: %w", err)
      }
    }
    return s.versionRepo.CreateRestoreAudit(ctx, tx, &types.ProfileRestoreAudit{
      UserID:     userID,
      VersionID:  versionID,
      RestoredBy: restoredBy,
    })
  })
  if err != nil {
    return nil, err
  }
  return version, nil
}
