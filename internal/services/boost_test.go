package services

import (
  "context"
  "errors"
  "testing"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/config"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type fakePrefsSource struct {
  prefs *TopPreferences
  err   error
}

func (f *fakePrefsSource) UpdateProfile(ctx context.Context, userID uuid.UUID, eventType scoring.EventType, sourceType scoring.SourceType, sourceID uuid.UUID) *types.StyleProfile {
  return nil
}

func (f *fakePrefsSource) GetOrCreateProfile(ctx context.Context, userID uuid.UUID) (*types.StyleProfile, error) {
  return nil, errors.New("not implemented")
}

func (f *fakePrefsSource) GetTopPreferences(ctx context.Context, userID uuid.UUID) (*TopPreferences, error) {
  return f.prefs, f.err
}

func (f *fakePrefsSource) CreateSnapshot(ctx context.Context, userID uuid.UUID, reason string) (*types.StyleProfileSnapshot, error) {
  return nil, errors.New("not implemented")
}

func newBoostTest(t *testing.T, prefs *TopPreferences, err error) BoostService {
  t.Helper()
  return NewBoostService(&fakePrefsSource{prefs: prefs, err: err}, config.DefaultBoostCalibration(), testLogger(t))
}

func confidentPrefs() *TopPreferences {
  return &TopPreferences{
    TopStyles:     []scoring.LabelScore{{Name: "minimal", Score: 6}},
    TopCategories: []scoring.LabelScore{{Name: "bags", Score: 4}, {Name: "shoes", Score: 2}},
    TopPriceTier:  &scoring.LabelScore{Name: "luxury", Score: 3},
    TopOccasions:  []scoring.LabelScore{{Name: "office", Score: 2}},
    Confidence:    0.9,
  }
}

func TestBoostItemsColdStartIsIdentity(t *testing.T) {
  svc := newBoostTest(t, &TopPreferences{
    TopStyles:  []scoring.LabelScore{{Name: "minimal", Score: 6}},
    Confidence: 0.2,
  }, nil)

  in := []ItemCandidate{
    {ID: "b", BaseScore: 0.5, StyleTags: []string{"minimal"}},
    {ID: "a", BaseScore: 2.0},
  }
  out := svc.BoostItemsForUser(context.Background(), uuid.New(), in)

  if len(out) != 2 || out[0].ID != "b" || out[1].ID != "a" {
    t.Fatalf("cold start must preserve order, got %v", out)
  }
  for _, item := range out {
    if item.Multiplier != 1.0 {
      t.Errorf("item %s multiplier = %v, want 1.0", item.ID, item.Multiplier)
    }
  }
}

func TestBoostItemsLookupFailureIsIdentity(t *testing.T) {
  svc := newBoostTest(t, nil, errors.New("db down"))

  in := []ItemCandidate{{ID: "b"}, {ID: "a"}}
  out := svc.BoostItemsForUser(context.Background(), uuid.New(), in)
  if out[0].ID != "b" || out[1].ID != "a" {
    t.Fatalf("failure must preserve order, got %v", out)
  }
}

func TestBoostItemsStyleMatchReorders(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []ItemCandidate{
    {ID: "A", BaseScore: 1.0, StyleTags: []string{"minimal"}},
    {ID: "B", BaseScore: 1.2},
  }
  out := svc.BoostItemsForUser(context.Background(), uuid.New(), in)

  if out[0].ID != "A" || out[1].ID != "B" {
    t.Fatalf("order = [%s %s], want [A B]", out[0].ID, out[1].ID)
  }
  if !almostEqual(out[0].BoostedScore, 1.3) {
    t.Errorf("A boosted = %v, want 1.3", out[0].BoostedScore)
  }
  if !almostEqual(out[1].BoostedScore, 1.2) {
    t.Errorf("B boosted = %v, want 1.2", out[1].BoostedScore)
  }
}

func TestBoostItemsAccumulatesAllMatches(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []ItemCandidate{{
    ID:          "full",
    StyleTags:   []string{"minimal", "classic"},
    Category:    "Handbags & Wallets", // maps to bags
    PriceTier:   "luxury",
    OccasionTag: "office",
  }}
  out := svc.BoostItemsForUser(context.Background(), uuid.New(), in)

  want := 1.3 * 1.2 * 1.15 * 1.10
  if !almostEqual(out[0].Multiplier, want) {
    t.Errorf("multiplier = %v, want %v", out[0].Multiplier, want)
  }
  // Unset base score defaults to 1.0.
  if !almostEqual(out[0].BoostedScore, want) {
    t.Errorf("boosted = %v, want %v", out[0].BoostedScore, want)
  }
}

func TestBoostItemsStableOnTies(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []ItemCandidate{
    {ID: "first", BaseScore: 1.0},
    {ID: "second", BaseScore: 1.0},
    {ID: "third", BaseScore: 1.0},
  }
  out := svc.BoostItemsForUser(context.Background(), uuid.New(), in)
  for i, want := range []string{"first", "second", "third"} {
    if out[i].ID != want {
      t.Errorf("tie order[%d] = %s, want %s", i, out[i].ID, want)
    }
  }
}

func TestBoostModulesAestheticAndCategory(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []ModuleCandidate{{
    ID:            "edit",
    AestheticTags: []string{"minimal"},
    Category:      "Shoes",
  }}
  out := svc.BoostModulesForUser(context.Background(), uuid.New(), in)

  want := 1.2 * 1.15
  if !almostEqual(out[0].Multiplier, want) {
    t.Errorf("module multiplier = %v, want %v", out[0].Multiplier, want)
  }
}

func TestRankStoriesRecentInteractionBonus(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []StoryCandidate{
    {ID: "quiet", BaseScore: 1.0},
    {ID: "engaged", BaseScore: 1.0, RecentlyInteracted: true},
  }
  out := svc.RankStoriesForUser(context.Background(), uuid.New(), in)

  if out[0].ID != "engaged" {
    t.Fatalf("order[0] = %s, want engaged", out[0].ID)
  }
  if !almostEqual(out[0].Multiplier, 1.2) {
    t.Errorf("recent-interaction multiplier = %v, want 1.2", out[0].Multiplier)
  }
}

func TestRankStoriesAestheticMatch(t *testing.T) {
  svc := newBoostTest(t, confidentPrefs(), nil)

  in := []StoryCandidate{{ID: "story", AestheticTags: []string{"minimal"}}}
  out := svc.RankStoriesForUser(context.Background(), uuid.New(), in)
  if !almostEqual(out[0].Multiplier, 1.4) {
    t.Errorf("story aesthetic multiplier = %v, want 1.4", out[0].Multiplier)
  }
}
