package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
)

// ChatFilters is the structured preference signal extracted upstream from a
// shopping-chat exchange. Extraction itself happens outside this service.
type ChatFilters struct {
  Colors           []string `json:"colors,omitempty"`
  Styles           []string `json:"styles,omitempty"`
  Categories       []string `json:"categories,omitempty"`
  AvoidedMaterials []string `json:"avoided_materials,omitempty"`
  Occasions        []string `json:"occasions,omitempty"`
}

func (f ChatFilters) isEmpty() bool {
  return len(f.Colors) == 0 && len(f.Styles) == 0 && len(f.Categories) == 0 &&
    len(f.AvoidedMaterials) == 0 && len(f.Occasions) == 0
}

// ChatPreferenceService folds chat-extracted filters into the explicit
// preference mirror and forwards a weak behavioral signal into the style
// pipeline. The mirror mutation is versioned and diffed so it can be undone.
type ChatPreferenceService interface {
  IngestChatFilters(ctx context.Context, userID uuid.UUID, filters ChatFilters) error
}

type chatPreferenceService struct {
  preferences PreferencesService
  versions    ProfileVersionService
  diffs       ProfileDiffService
  profiles    StyleProfileService
  log         *logger.Logger
}

func NewChatPreferenceService(
  preferences PreferencesService,
  versions ProfileVersionService,
  diffs ProfileDiffService,
  profiles StyleProfileService,
  baseLog *logger.Logger,
) ChatPreferenceService {
  svcLog := baseLog.With("service", "ChatPreferenceService")
  return &chatPreferenceService{
    preferences: preferences,
    versions:    versions,
    diffs:       diffs,
    profiles:    profiles,
    log:         svcLog,
  }
}

// mergeList unions new values into an encoded string list, preserving the
// stored order and appending unseen values in input order.
func mergeList(stored datatypes.JSON, incoming []string) []string {
  var current []string
  if len(stored) > 0 {
    _ = json.Unmarshal(stored, &current)
  }
  seen := make(map[string]bool, len(current))
  for _, v := range current {
    seen[v] = true
  }
  for _, v := range incoming {
    if v == "" || seen[v] {
      continue
    }
    current = append(current, v)
    seen[v] = true
  }
  return current
}

func (s *chatPreferenceService) IngestChatFilters(ctx context.Context, userID uuid.UUID, filters ChatFilters) error {
  if filters.isEmpty() {
    return nil
  }

  // Version first so the whole ingestion can be rolled back.
  if _, err := s.versions.Snapshot(ctx, userID); err != nil {
    return fmt.Errorf("version before chat ingestion: %w", err)
  }

  err := s.diffs.CaptureBeforeAfter(ctx, userID, func(ctx context.Context) error {
    current, err := s.preferences.Get(ctx, userID)
    if err != nil {
      return err
    }
    patch := PreferencePatch{
      PreferredColors:     mergeList(current.PreferredColors, filters.Colors),
      PreferredStyles:     mergeList(current.PreferredStyles, filters.Styles),
      PreferredCategories: mergeList(current.PreferredCategories, filters.Categories),
      AvoidedMaterials:    mergeList(current.AvoidedMaterials, filters.AvoidedMaterials),
      Occasions:           mergeList(current.Occasions, filters.Occasions),
    }
    _, err = s.preferences.Patch(ctx, userID, patch)
    return err
  })
  if err != nil {
    return fmt.Errorf("fold chat filters: %w", err)
  }

  // Stated preferences are weaker than purchases; forward them as one
  // click-weight behavioral event with no resolvable subject.
  s.profiles.UpdateProfile(ctx, userID, scoring.EventClick, scoring.SourceRetailer, uuid.Nil)
  return nil
}
