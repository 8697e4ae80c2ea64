package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

// TopPreferences is the aggregator view consumed by boosters and the
// personalization hub.
type TopPreferences struct {
  TopStyles      []scoring.LabelScore `json:"top_styles"`
  TopCategories  []scoring.LabelScore `json:"top_categories"`
  TopPriceTier   *scoring.LabelScore  `json:"top_price_tier,omitempty"`
  TopOccasions   []scoring.LabelScore `json:"top_occasions"`
  CommerceIntent float64              `json:"commerce_intent"`
  Confidence     float64              `json:"confidence"`
}

// ColdStartConfidence is the floor below which consumers skip
// personalization.
const ColdStartConfidence = 0.3

type StyleProfileService interface {
  // UpdateProfile is the ingestion entry point. It stamps the event weight,
  // resolves subject metadata, computes increments, merges them atomically
  // and appends the ledger row. Errors are logged, never returned upward as
  // hard failures to the caller's primary request; on failure the current
  // profile (possibly nil) is returned.
  UpdateProfile(ctx context.Context, userID uuid.UUID, eventType scoring.EventType, sourceType scoring.SourceType, sourceID uuid.UUID) *types.StyleProfile
  GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*types.StyleProfile, error)
  GetTopPreferences(ctx context.Context, userID uuid.UUID) (*TopPreferences, error)
  CreateSnapshot(ctx context.Context, userID uuid.UUID, reason string) (*types.StyleProfileSnapshot, error)
}

type styleProfileService struct {
  profileRepo  repos.StyleProfileRepo
  eventRepo    repos.StyleProfileEventRepo
  snapshotRepo repos.StyleProfileSnapshotRepo
  metadata     SourceMetadataService
  log          *logger.Logger
}

func NewStyleProfileService(
  profileRepo repos.StyleProfileRepo,
  eventRepo repos.StyleProfileEventRepo,
  snapshotRepo repos.StyleProfileSnapshotRepo,
  metadata SourceMetadataService,
  baseLog *logger.Logger,
) StyleProfileService {
  svcLog := baseLog.With("service", "StyleProfileService")
  return &styleProfileService{
    profileRepo:  profileRepo,
    eventRepo:    eventRepo,
    snapshotRepo: snapshotRepo,
    metadata:     metadata,
    log:          svcLog,
  }
}

func (s *styleProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, eventType scoring.EventType, sourceType scoring.SourceType, sourceID uuid.UUID) *types.StyleProfile {
  if !scoring.KnownEventType(eventType) {
    s.log.Warn("unrecognized event type, using default weight",
      "user_id", userID, "event_type", eventType)
  }
  weight := scoring.Weight(eventType)

  meta := s.metadata.Resolve(ctx, sourceType, sourceID)
  update := scoring.Compute(weight, eventType, sourceType, meta)

  now := time.Now().UTC()
  profile, err := s.profileRepo.ApplyUpdate(ctx, userID, update, now)
  if err != nil {
    s.log.Error("profile merge failed", "user_id", userID, "event_type", eventType, "error", err)
    return nil
  }

  // Ledger append happens after the merge commits. A failed append leaves
  // the profile ahead of the ledger, which is acceptable: the ledger is an
  // audit trail, not the source of truth for scores.
  metaRaw, err := json.Marshal(meta)
  if err != nil {
    metaRaw = []byte("{}")
  }
  if _, err := s.eventRepo.Append(ctx, nil, &types.StyleProfileEvent{
    UserID:           userID,
    EventType:        string(eventType),
    SourceType:       string(sourceType),
    SourceID:         sourceID,
    Weight:           weight,
    MetadataSnapshot: datatypes.JSON(metaRaw),
  }); err != nil {
    s.log.Error("event ledger append failed", "user_id", userID, "event_type", eventType, "error", err)
  }

  return profile
}

func (s *styleProfileService) GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*types.StyleProfile, error) {
  profile, err := s.profileRepo.GetOrCreate(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("get or create style profile: %w", err)
  }
  return profile, nil
}

// topStyles merges the archetype layer (influencer-driven) with the style-tag
// layer (product-driven) so that either signal path surfaces in the top
// styles a booster matches against.
func topStyles(layers scoring.Layers, n int) []scoring.LabelScore {
  merged := map[string]float64{}
  for label, score := range layers[string(scoring.DimStyleArchetype)] {
    merged[label] += score
  }
  for label, score := range layers[string(scoring.DimStyleTags)] {
    merged[label] += score
  }
  view := scoring.Layers{"style": merged}
  return view.TopN(scoring.Dimension("style"), n)
}

func (s *styleProfileService) GetTopPreferences(ctx context.Context, userID uuid.UUID) (*TopPreferences, error) {
  profile, err := s.profileRepo.GetOrCreate(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("load style profile: %w", err)
  }
  layers, err := profile.DecodeLayers()
  if err != nil {
    return nil, fmt.Errorf("decode style profile layers: %w", err)
  }

  prefs := &TopPreferences{
    TopStyles:      topStyles(layers, 3),
    TopCategories:  layers.TopN(scoring.DimCategoryFocus, 2),
    TopOccasions:   layers.TopN(scoring.DimOccasion, 2),
    CommerceIntent: profile.CommerceIntent,
    Confidence:     profile.Confidence,
  }
  if tier := layers.TopN(scoring.DimPriceTier, 1); len(tier) == 1 {
    prefs.TopPriceTier = &tier[0]
  }
  return prefs, nil
}

func (s *styleProfileService) CreateSnapshot(ctx context.Context, userID uuid.UUID, reason string) (*types.StyleProfileSnapshot, error) {
  profile, err := s.profileRepo.GetOrCreate(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("load style profile: %w", err)
  }
  if reason == "" {
    reason = types.SnapshotReasonManual
  }
  snapshot, err := s.snapshotRepo.Create(ctx, nil, &types.StyleProfileSnapshot{
    UserID:         userID,
    Layers:         profile.Layers,
    CommerceIntent: profile.CommerceIntent,
    Confidence:     profile.Confidence,
    TotalEvents:    profile.TotalEvents,
    Reason:         reason,
  })
  if err != nil {
    return nil, fmt.Errorf("create style profile snapshot: %w", err)
  }
  return snapshot, nil
}
