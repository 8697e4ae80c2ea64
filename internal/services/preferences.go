package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// PreferencePatch carries only the preference fields the caller wants to
// change; nil fields are left untouched.
type PreferencePatch struct {
  PreferredColors     []string `json:"preferred_colors,omitempty"`
  PreferredStyles     []string `json:"preferred_styles,omitempty"`
  PreferredCategories []string `json:"preferred_categories,omitempty"`
  AvoidedMaterials    []string `json:"avoided_materials,omitempty"`
  FitPreferences      []string `json:"fit_preferences,omitempty"`
  Occasions           []string `json:"occasions,omitempty"`
}

// PreferencesService manages the explicit fashion-preference record.
type PreferencesService interface {
  Get(ctx context.Context, userID uuid.UUID) (*types.UserPreference, error)
  Upsert(ctx context.Context, preference *types.UserPreference) (*types.UserPreference, error)
  // Patch merges the non-nil patch fields into the stored record, creating
  // it if needed.
  Patch(ctx context.Context, userID uuid.UUID, patch PreferencePatch) (*types.UserPreference, error)
}

type preferencesService struct {
  repo repos.UserPreferenceRepo
  log  *logger.Logger
}

func NewPreferencesService(repo repos.UserPreferenceRepo, baseLog *logger.Logger) PreferencesService {
  svcLog := baseLog.With("service", "PreferencesService")
  return &preferencesService{repo: repo, log: svcLog}
}

func (s *preferencesService) Get(ctx context.Context, userID uuid.UUID) (*types.UserPreference, error) {
  preference, err := s.repo.GetByUserID(ctx, nil, userID)
  if err != nil {
    if errors.Is(err, apperr.ErrNotFound) {
      return &types.UserPreference{UserID: userID}, nil
    }
    return nil, fmt.Errorf("load user preference: %w", err)
  }
  return preference, nil
}

func (s *preferencesService) Upsert(ctx context.Context, preference *types.UserPreference) (*types.UserPreference, error) {
  if preference.UserID == uuid.Nil {
    return nil, apperr.ErrInvalidArgument
  }
  saved, err := s.repo.Upsert(ctx, nil, preference)
  if err != nil {
    return nil, fmt.Errorf("upsert user preference: %w", err)
  }
  return saved, nil
}

func (s *preferencesService) Patch(ctx context.Context, userID uuid.UUID, patch PreferencePatch) (*types.UserPreference, error) {
  current, err := s.Get(ctx, userID)
  if err != nil {
    return nil, err
  }

  apply := func(target *datatypes.JSON, values []string) {
    if values == nil {
      return
    }
    raw, err := json.Marshal(values)
    if err != nil {
      return
    }
    *target = datatypes.JSON(raw)
  }
  apply(&current.PreferredColors, patch.PreferredColors)
  apply(&current.PreferredStyles, patch.PreferredStyles)
  apply(&current.PreferredCategories, patch.PreferredCategories)
  apply(&current.AvoidedMaterials, patch.AvoidedMaterials)
  apply(&current.FitPreferences, patch.FitPreferences)
  apply(&current.Occasions, patch.Occasions)

  return s.Upsert(ctx, current)
}
