package services

import (
  "context"
  "sort"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/config"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
)

// ItemCandidate is one recommendation candidate supplied by the caller.
// BaseScore zero means unscored and is treated as 1.0.
type ItemCandidate struct {
  ID          string   `json:"id"`
  BaseScore   float64  `json:"base_score,omitempty"`
  StyleTags   []string `json:"style_tags,omitempty"`
  Category    string   `json:"category,omitempty"`
  PriceTier   string   `json:"price_tier,omitempty"`
  OccasionTag string   `json:"occasion_tag,omitempty"`
}

// BoostedItem carries the candidate plus its accumulated multiplier.
type BoostedItem struct {
  ItemCandidate
  Multiplier   float64 `json:"multiplier"`
  BoostedScore float64 `json:"boosted_score"`
}

// ModuleCandidate is a feed module (brand rail, edit, collection).
type ModuleCandidate struct {
  ID            string   `json:"id"`
  BaseScore     float64  `json:"base_score,omitempty"`
  AestheticTags []string `json:"aesthetic_tags,omitempty"`
  Category      string   `json:"category,omitempty"`
  PriceTier     string   `json:"price_tier,omitempty"`
}

// BoostedModule carries the module candidate plus its multiplier.
type BoostedModule struct {
  ModuleCandidate
  Multiplier   float64 `json:"multiplier"`
  BoostedScore float64 `json:"boosted_score"`
}

// StoryCandidate is a brand story. RecentlyInteracted is resolved by the
// caller from its own engagement data.
type StoryCandidate struct {
  ID                 string   `json:"id"`
  BaseScore          float64  `json:"base_score,omitempty"`
  AestheticTags      []string `json:"aesthetic_tags,omitempty"`
  Category           string   `json:"category,omitempty"`
  PriceTier          string   `json:"price_tier,omitempty"`
  RecentlyInteracted bool     `json:"recently_interacted,omitempty"`
}

// RankedStory carries the story candidate plus its multiplier.
type RankedStory struct {
  StoryCandidate
  Multiplier   float64 `json:"multiplier"`
  BoostedScore float64 `json:"boosted_score"`
}

// BoostService re-scores recommendation candidates against a user's top
// preferences. Every method degrades to identity ranking: below the
// cold-start confidence floor, or on any internal failure, the input comes
// back in its original order with multiplier 1.
type BoostService interface {
  BoostItemsForUser(ctx context.Context, userID uuid.UUID, items []ItemCandidate) []BoostedItem
  BoostModulesForUser(ctx context.Context, userID uuid.UUID, modules []ModuleCandidate) []BoostedModule
  RankStoriesForUser(ctx context.Context, userID uuid.UUID, stories []StoryCandidate) []RankedStory
}

type boostService struct {
  profiles StyleProfileService
  cal      config.BoostCalibration
  log      *logger.Logger
}

func NewBoostService(profiles StyleProfileService, cal config.BoostCalibration, baseLog *logger.Logger) BoostService {
  svcLog := baseLog.With("service", "BoostService")
  return &boostService{profiles: profiles, cal: cal, log: svcLog}
}

func baseScore(score float64) float64 {
  if score == 0 {
    return 1.0
  }
  return score
}

func labelSet(entries []scoring.LabelScore) map[string]bool {
  set := make(map[string]bool, len(entries))
  for _, e := range entries {
    set[e.Name] = true
  }
  return set
}

func anyIn(tags []string, set map[string]bool) bool {
  for _, tag := range tags {
    if set[tag] {
      return true
    }
  }
  return false
}

// prefsForBoosting returns nil when boosting must not apply.
func (s *boostService) prefsForBoosting(ctx context.Context, userID uuid.UUID) *TopPreferences {
  prefs, err := s.profiles.GetTopPreferences(ctx, userID)
  if err != nil {
    s.log.Warn("preference lookup failed, skipping boost", "user_id", userID, "error", err)
    return nil
  }
  if prefs.Confidence < ColdStartConfidence {
    return nil
  }
  return prefs
}

func (s *boostService) BoostItemsForUser(ctx context.Context, userID uuid.UUID, items []ItemCandidate) []BoostedItem {
  out := make([]BoostedItem, len(items))
  for i, item := range items {
    out[i] = BoostedItem{ItemCandidate: item, Multiplier: 1.0, BoostedScore: baseScore(item.BaseScore)}
  }

  prefs := s.prefsForBoosting(ctx, userID)
  if prefs == nil {
    return out
  }

  styles := labelSet(prefs.TopStyles)
  categories := labelSet(prefs.TopCategories)
  occasions := labelSet(prefs.TopOccasions)

  for i := range out {
    item := &out[i]
    if anyIn(item.StyleTags, styles) {
      item.Multiplier *= s.cal.ItemStyleMatch
    }
    if item.Category != "" && categories[scoring.FocusForCategory(item.Category)] {
      item.Multiplier *= s.cal.ItemCategoryMatch
    }
    if prefs.TopPriceTier != nil && item.PriceTier == prefs.TopPriceTier.Name {
      item.Multiplier *= s.cal.ItemPriceTierMatch
    }
    if item.OccasionTag != "" && occasions[item.OccasionTag] {
      item.Multiplier *= s.cal.ItemOccasionMatch
    }
    item.BoostedScore = baseScore(item.BaseScore) * item.Multiplier
  }

  sort.SliceStable(out, func(i, j int) bool {
    return out[i].BoostedScore > out[j].BoostedScore
  })
  return out
}

func (s *boostService) BoostModulesForUser(ctx context.Context, userID uuid.UUID, modules []ModuleCandidate) []BoostedModule {
  out := make([]BoostedModule, len(modules))
  for i, module := range modules {
    out[i] = BoostedModule{ModuleCandidate: module, Multiplier: 1.0, BoostedScore: baseScore(module.BaseScore)}
  }

  prefs := s.prefsForBoosting(ctx, userID)
  if prefs == nil {
    return out
  }

  styles := labelSet(prefs.TopStyles)
  categories := labelSet(prefs.TopCategories)

  for i := range out {
    module := &out[i]
    if anyIn(module.AestheticTags, styles) {
      module.Multiplier *= s.cal.ModuleAestheticMatch
    }
    if module.Category != "" && categories[scoring.FocusForCategory(module.Category)] {
      module.Multiplier *= s.cal.ModuleCategoryMatch
    }
    if prefs.TopPriceTier != nil && module.PriceTier == prefs.TopPriceTier.Name {
      module.Multiplier *= s.cal.ModulePriceTierMatch
    }
    module.BoostedScore = baseScore(module.BaseScore) * module.Multiplier
  }

  sort.SliceStable(out, func(i, j int) bool {
    return out[i].BoostedScore > out[j].BoostedScore
  })
  return out
}

func (s *boostService) RankStoriesForUser(ctx context.Context, userID uuid.UUID, stories []StoryCandidate) []RankedStory {
  out := make([]RankedStory, len(stories))
  for i, story := range stories {
    out[i] = RankedStory{StoryCandidate: story, Multiplier: 1.0, BoostedScore: baseScore(story.BaseScore)}
  }

  prefs := s.prefsForBoosting(ctx, userID)
  if prefs == nil {
    return out
  }

  styles := labelSet(prefs.TopStyles)
  categories := labelSet(prefs.TopCategories)

  for i := range out {
    story := &out[i]
    if anyIn(story.AestheticTags, styles) {
      story.Multiplier *= s.cal.StoryAestheticMatch
    }
    if story.Category != "" && categories[scoring.FocusForCategory(story.Category)] {
      story.Multiplier *= s.cal.StoryCategoryMatch
    }
    if prefs.TopPriceTier != nil && story.PriceTier == prefs.TopPriceTier.Name {
      story.Multiplier *= s.cal.StoryPriceTierMatch
    }
    if story.RecentlyInteracted {
      story.Multiplier *= s.cal.StoryRecentInteraction
    }
    story.BoostedScore = baseScore(story.BaseScore) * story.Multiplier
  }

  sort.SliceStable(out, func(i, j int) bool {
    return out[i].BoostedScore > out[j].BoostedScore
  })
  return out
}
