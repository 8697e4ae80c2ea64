package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// ProfileDiffService audits mutating operations on the shopper/preference
// mirror by persisting a before/after pair around them.
type ProfileDiffService interface {
  // CaptureBeforeAfter snapshots the mirror, runs fn, snapshots again and
  // persists the pair. fn's error is returned unchanged; the diff is only
  // written when fn succeeds.
  CaptureBeforeAfter(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error
}

type profileDiffService struct {
  diffRepo       repos.ProfileDiffRepo
  shopperRepo    repos.ShopperProfileRepo
  preferenceRepo repos.UserPreferenceRepo
  log            *logger.Logger
}

func NewProfileDiffService(
  diffRepo repos.ProfileDiffRepo,
  shopperRepo repos.ShopperProfileRepo,
  preferenceRepo repos.UserPreferenceRepo,
  baseLog *logger.Logger,
) ProfileDiffService {
  svcLog := baseLog.With("service", "ProfileDiffService")
  return &profileDiffService{
    diffRepo:       diffRepo,
    shopperRepo:    shopperRepo,
    preferenceRepo: preferenceRepo,
    log:            svcLog,
  }
}

func (s *profileDiffService) CaptureBeforeAfter(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
  before, err := captureMirror(ctx, nil, s.shopperRepo, s.preferenceRepo, userID)
  if err != nil {
    return fmt.Errorf("capture before state: %w", err)
  }

  if err := fn(ctx); err != nil {
    return err
  }

  after, err := captureMirror(ctx, nil, s.shopperRepo, s.preferenceRepo, userID)
  if err != nil {
    return fmt.Errorf("capture after state: %w", err)
  }

  if err := s.diffRepo.Create(ctx, nil, &types.ProfileDiff{
    UserID: userID,
    Before: before,
    After:  after,
  }); err != nil {
    // The mutation already happened; a missing audit row should not fail it.
    s.log.Error("profile diff persist failed", "user_id", userID, "error", err)
  }
  return nil
}
