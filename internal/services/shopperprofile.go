package services

import (
  "context"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// ShopperProfileService exposes the narrow shopping-behavior mirror. Reads
// never fail on a missing row; callers get an empty profile for the user.
type ShopperProfileService interface {
  Get(ctx context.Context, userID uuid.UUID) (*types.ShopperProfile, error)
  Upsert(ctx context.Context, profile *types.ShopperProfile) (*types.ShopperProfile, error)
}

type shopperProfileService struct {
  repo repos.ShopperProfileRepo
  log  *logger.Logger
}

func NewShopperProfileService(repo repos.ShopperProfileRepo, baseLog *logger.Logger) ShopperProfileService {
  svcLog := baseLog.With("service", "ShopperProfileService")
  return &shopperProfileService{repo: repo, log: svcLog}
}

func (s *shopperProfileService) Get(ctx context.Context, userID uuid.UUID) (*types.ShopperProfile, error) {
  profile, err := s.repo.GetByUserID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, apperr.ErrNotFound) {
      return &types.ShopperProfile{UserID: userID}, nil
    }
    return nil, fmt.Errorf("load shopper profile: %w", err)
  }
  return profile, nil
}

func (s *shopperProfileService) Upsert(ctx context.Context, profile *types.ShopperProfile) (*types.ShopperProfile, error) {
  if profile.UserID == uuid.Nil {
    return nil, apperr.ErrInvalidArgument
  }
  saved, err := s.repo.Upsert(ctx, nil, profile)
  if err != nil {
    return nil, fmt.Errorf("upsert shopper profile: %w", err)
  }
  return saved, nil
}
