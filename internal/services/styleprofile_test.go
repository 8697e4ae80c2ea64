package services

import (
  "context"
  "math"
  "sync"
  "testing"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type fakeProfileRepo struct {
  mu       sync.Mutex
  profiles map[uuid.UUID]*types.StyleProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
  return &fakeProfileRepo{profiles: map[uuid.UUID]*types.StyleProfile{}}
}

func (f *fakeProfileRepo) getOrCreateLocked(userID uuid.UUID) *types.StyleProfile {
  profile, ok := f.profiles[userID]
  if !ok {
    profile = &types.StyleProfile{ID: uuid.New(), UserID: userID}
    f.profiles[userID] = profile
  }
  return profile
}

func (f *fakeProfileRepo) GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  copied := *f.getOrCreateLocked(userID)
  return &copied, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  return f.GetOrCreate(ctx, tx, userID)
}

func (f *fakeProfileRepo) ApplyUpdate(ctx context.Context, userID uuid.UUID, update scoring.Update, now time.Time) (*types.StyleProfile, error) {
  f.mu.Lock()
  defer f.mu.Unlock()

  profile := f.getOrCreateLocked(userID)
  layers, err := profile.DecodeLayers()
  if err != nil {
    return nil, err
  }
  layers.Add(update.Deltas)
  if err := profile.EncodeLayers(layers); err != nil {
    return nil, err
  }
  profile.TotalEvents++
  profile.Confidence = scoring.ConfidenceForEvents(profile.TotalEvents)
  profile.CommerceIntent += update.CommerceIntentDelta
  profile.LastEventAt = &now

  copied := *profile
  return &copied, nil
}

func (f *fakeProfileRepo) ScaleLayers(ctx context.Context, userID uuid.UUID, factor float64) error {
  f.mu.Lock()
  defer f.mu.Unlock()

  profile := f.getOrCreateLocked(userID)
  layers, err := profile.DecodeLayers()
  if err != nil {
    return err
  }
  layers.Scale(factor)
  return profile.EncodeLayers(layers)
}

func (f *fakeProfileRepo) ListUserIDs(ctx context.Context, tx *gorm.DB, offset, limit int) ([]uuid.UUID, error) {
  f.mu.Lock()
  defer f.mu.Unlock()

  var ids []uuid.UUID
  for id := range f.profiles {
    ids = append(ids, id)
  }
  if offset >= len(ids) {
    return nil, nil
  }
  ids = ids[offset:]
  if len(ids) > limit {
    ids = ids[:limit]
  }
  return ids, nil
}

type fakeEventRepo struct {
  mu     sync.Mutex
  events []*types.StyleProfileEvent
}

func (f *fakeEventRepo) Append(ctx context.Context, tx *gorm.DB, event *types.StyleProfileEvent) (*types.StyleProfileEvent, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  event.ID = uuid.New()
  event.CreatedAt = time.Now().UTC()
  f.events = append(f.events, event)
  return event, nil
}

func (f *fakeEventRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileEvent, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  var out []*types.StyleProfileEvent
  for _, e := range f.events {
    if e.UserID == userID {
      out = append(out, e)
    }
  }
  return out, nil
}

func (f *fakeEventRepo) CountByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  events, _ := f.ListByUser(ctx, tx, userID, 0)
  return int64(len(events)), nil
}

type fakeSnapshotRepo struct {
  mu        sync.Mutex
  snapshots []*types.StyleProfileSnapshot
}

func (f *fakeSnapshotRepo) Create(ctx context.Context, tx *gorm.DB, snapshot *types.StyleProfileSnapshot) (*types.StyleProfileSnapshot, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  snapshot.ID = uuid.New()
  snapshot.CreatedAt = time.Now().UTC()
  f.snapshots = append(f.snapshots, snapshot)
  return snapshot, nil
}

func (f *fakeSnapshotRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StyleProfileSnapshot, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  var out []*types.StyleProfileSnapshot
  for _, s := range f.snapshots {
    if s.UserID == userID {
      out = append(out, s)
    }
  }
  return out, nil
}

type fakeMetadata struct {
  byID map[uuid.UUID]scoring.SourceMetadata
}

func (f *fakeMetadata) Resolve(ctx context.Context, sourceType scoring.SourceType, sourceID uuid.UUID) scoring.SourceMetadata {
  return f.byID[sourceID]
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("dev")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return log
}

func newTestService(t *testing.T, meta *fakeMetadata) (StyleProfileService, *fakeProfileRepo, *fakeEventRepo, *fakeSnapshotRepo) {
  t.Helper()
  if meta == nil {
    meta = &fakeMetadata{byID: map[uuid.UUID]scoring.SourceMetadata{}}
  }
  profiles := newFakeProfileRepo()
  events := &fakeEventRepo{}
  snapshots := &fakeSnapshotRepo{}
  svc := NewStyleProfileService(profiles, events, snapshots, meta, testLogger(t))
  return svc, profiles, events, snapshots
}

func layerScore(t *testing.T, profile *types.StyleProfile, dim, label string) float64 {
  t.Helper()
  layers, err := profile.DecodeLayers()
  if err != nil {
    t.Fatalf("decode layers: %v", err)
  }
  return layers[dim][label]
}

func almostEqual(a, b float64) bool {
  return math.Abs(a-b) < 1e-9
}

func TestUpdateProfileLuxuryWorkwearPurchase(t *testing.T) {
  userID := uuid.New()
  productID := uuid.New()
  meta := &fakeMetadata{byID: map[uuid.UUID]scoring.SourceMetadata{
    productID: {Category: "Workwear", PriceTier: "luxury"},
  }}
  svc, _, events, _ := newTestService(t, meta)

  profile := svc.UpdateProfile(context.Background(), userID, scoring.EventPurchase, scoring.SourceProduct, productID)
  if profile == nil {
    t.Fatal("expected profile, got nil")
  }

  if got := layerScore(t, profile, string(scoring.DimPriceTier), "luxury"); !almostEqual(got, 1.5) {
    t.Errorf("price_tier.luxury = %v, want 1.5", got)
  }
  if got := layerScore(t, profile, string(scoring.DimCategoryFocus), "workwear"); !almostEqual(got, 1.5) {
    t.Errorf("category_focus.workwear = %v, want 1.5", got)
  }
  if got := layerScore(t, profile, string(scoring.DimQualityExpect), "luxury_quality_only"); !almostEqual(got, 0.4*1.5) {
    t.Errorf("quality_expectations.luxury_quality_only = %v, want 0.6", got)
  }
  if !almostEqual(profile.CommerceIntent, 0.2) {
    t.Errorf("commerce_intent = %v, want 0.2", profile.CommerceIntent)
  }
  if profile.TotalEvents != 1 {
    t.Errorf("total_events = %d, want 1", profile.TotalEvents)
  }
  want := math.Log10(3) / 2
  if !almostEqual(profile.Confidence, want) {
    t.Errorf("confidence = %v, want %v", profile.Confidence, want)
  }
  if profile.LastEventAt == nil {
    t.Error("last_event_at not stamped")
  }

  ledger, _ := events.ListByUser(context.Background(), nil, userID, 0)
  if len(ledger) != 1 {
    t.Fatalf("ledger rows = %d, want 1", len(ledger))
  }
  if !almostEqual(ledger[0].Weight, 1.5) {
    t.Errorf("stamped weight = %v, want 1.5", ledger[0].Weight)
  }
  if ledger[0].EventType != "purchase" {
    t.Errorf("event type = %q, want purchase", ledger[0].EventType)
  }
}

func TestUpdateProfileUnknownEventTypeUsesDefaultWeight(t *testing.T) {
  userID := uuid.New()
  svc, _, events, _ := newTestService(t, nil)

  profile := svc.UpdateProfile(context.Background(), userID, scoring.EventType("hover"), scoring.SourceProduct, uuid.New())
  if profile == nil {
    t.Fatal("expected profile, got nil")
  }

  ledger, _ := events.ListByUser(context.Background(), nil, userID, 0)
  if len(ledger) != 1 {
    t.Fatalf("ledger rows = %d, want 1", len(ledger))
  }
  if !almostEqual(ledger[0].Weight, 0.5) {
    t.Errorf("stamped weight = %v, want 0.5", ledger[0].Weight)
  }
}

func TestUpdateProfileConcurrentSameUserLosesNothing(t *testing.T) {
  userID := uuid.New()
  influencerID := uuid.New()
  meta := &fakeMetadata{byID: map[uuid.UUID]scoring.SourceMetadata{
    influencerID: {StyleArchetype: "minimal"},
  }}
  svc, _, _, _ := newTestService(t, meta)

  const workers = 20
  var wg sync.WaitGroup
  wg.Add(workers)
  for i := 0; i < workers; i++ {
    go func() {
      defer wg.Done()
      svc.UpdateProfile(context.Background(), userID, scoring.EventFollow, scoring.SourceInfluencer, influencerID)
    }()
  }
  wg.Wait()

  profile, err := svc.GetOrCreateProfile(context.Background(), userID)
  if err != nil {
    t.Fatal(err)
  }
  if profile.TotalEvents != workers {
    t.Errorf("total_events = %d, want %d", profile.TotalEvents, workers)
  }
  if got := layerScore(t, profile, string(scoring.DimStyleArchetype), "minimal"); !almostEqual(got, float64(workers)*1.0) {
    t.Errorf("style_archetype.minimal = %v, want %v", got, float64(workers))
  }
}

func TestGetTopPreferences(t *testing.T) {
  userID := uuid.New()
  svc, profiles, _, _ := newTestService(t, nil)

  seed := scoring.Update{Deltas: map[scoring.Dimension]map[string]float64{
    scoring.DimStyleArchetype: {"minimal": 5, "boho": 2},
    scoring.DimStyleTags:      {"minimal": 1, "edgy": 3, "romantic": 3},
    scoring.DimCategoryFocus:  {"bags": 4, "shoes": 2, "denim": 1},
    scoring.DimPriceTier:      {"luxury": 3, "premium": 1},
    scoring.DimOccasion:       {"office": 2, "vacation": 2, "date_night": 1},
  }}
  if _, err := profiles.ApplyUpdate(context.Background(), userID, seed, time.Now()); err != nil {
    t.Fatal(err)
  }

  prefs, err := svc.GetTopPreferences(context.Background(), userID)
  if err != nil {
    t.Fatal(err)
  }

  // Styles merge the archetype and tag layers: minimal 6, edgy 3, romantic 3
  // (tie broken lexically).
  wantStyles := []string{"minimal", "edgy", "romantic"}
  if len(prefs.TopStyles) != 3 {
    t.Fatalf("top styles = %d entries, want 3", len(prefs.TopStyles))
  }
  for i, want := range wantStyles {
    if prefs.TopStyles[i].Name != want {
      t.Errorf("top style[%d] = %q, want %q", i, prefs.TopStyles[i].Name, want)
    }
  }
  if !almostEqual(prefs.TopStyles[0].Score, 6) {
    t.Errorf("merged minimal score = %v, want 6", prefs.TopStyles[0].Score)
  }

  if len(prefs.TopCategories) != 2 || prefs.TopCategories[0].Name != "bags" || prefs.TopCategories[1].Name != "shoes" {
    t.Errorf("top categories = %v, want [bags shoes]", prefs.TopCategories)
  }
  if prefs.TopPriceTier == nil || prefs.TopPriceTier.Name != "luxury" {
    t.Errorf("top price tier = %v, want luxury", prefs.TopPriceTier)
  }
  if len(prefs.TopOccasions) != 2 || prefs.TopOccasions[0].Name != "office" || prefs.TopOccasions[1].Name != "vacation" {
    t.Errorf("top occasions = %v, want [office vacation] (tie broken lexically)", prefs.TopOccasions)
  }
}

func TestGetTopPreferencesEmptyProfile(t *testing.T) {
  svc, _, _, _ := newTestService(t, nil)

  prefs, err := svc.GetTopPreferences(context.Background(), uuid.New())
  if err != nil {
    t.Fatal(err)
  }
  if len(prefs.TopStyles) != 0 || len(prefs.TopCategories) != 0 || prefs.TopPriceTier != nil {
    t.Errorf("expected empty aggregates, got %+v", prefs)
  }
  if prefs.Confidence != 0 {
    t.Errorf("confidence = %v, want 0", prefs.Confidence)
  }
}

func TestCreateSnapshotDefaultsToManual(t *testing.T) {
  userID := uuid.New()
  svc, _, _, snapshots := newTestService(t, nil)

  snapshot, err := svc.CreateSnapshot(context.Background(), userID, "")
  if err != nil {
    t.Fatal(err)
  }
  if snapshot.Reason != types.SnapshotReasonManual {
    t.Errorf("reason = %q, want %q", snapshot.Reason, types.SnapshotReasonManual)
  }

  stored, _ := snapshots.ListByUser(context.Background(), nil, userID, 0)
  if len(stored) != 1 {
    t.Errorf("stored snapshots = %d, want 1", len(stored))
  }
}
