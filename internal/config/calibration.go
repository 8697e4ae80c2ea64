package config

import (
  "fmt"
  "os"
  "gopkg.in/yaml.v3"
)

// BoostCalibration holds the multiplicative constants of the recommendation
// boosters. Each surface (items, modules, stories) is tuned independently;
// these are not a shared table.
type BoostCalibration struct {
  ItemStyleMatch     float64 `yaml:"item_style_match"`
  ItemCategoryMatch  float64 `yaml:"item_category_match"`
  ItemPriceTierMatch float64 `yaml:"item_price_tier_match"`
  ItemOccasionMatch  float64 `yaml:"item_occasion_match"`

  ModuleAestheticMatch float64 `yaml:"module_aesthetic_match"`
  ModuleCategoryMatch  float64 `yaml:"module_category_match"`
  ModulePriceTierMatch float64 `yaml:"module_price_tier_match"`

  StoryAestheticMatch    float64 `yaml:"story_aesthetic_match"`
  StoryCategoryMatch     float64 `yaml:"story_category_match"`
  StoryPriceTierMatch    float64 `yaml:"story_price_tier_match"`
  StoryRecentInteraction float64 `yaml:"story_recent_interaction"`
}

// DefaultBoostCalibration returns the compiled-in constants.
func DefaultBoostCalibration() BoostCalibration {
  return BoostCalibration{
    ItemStyleMatch:     1.3,
    ItemCategoryMatch:  1.2,
    ItemPriceTierMatch: 1.15,
    ItemOccasionMatch:  1.10,

    ModuleAestheticMatch: 1.2,
    ModuleCategoryMatch:  1.15,
    ModulePriceTierMatch: 1.1,

    StoryAestheticMatch:    1.4,
    StoryCategoryMatch:     1.15,
    StoryPriceTierMatch:    1.1,
    StoryRecentInteraction: 1.2,
  }
}

// LoadBoostCalibration overlays a YAML file onto the defaults. Keys absent
// from the file keep their compiled values; a zero or negative multiplier in
// the file is rejected.
func LoadBoostCalibration(path string) (BoostCalibration, error) {
  cal := DefaultBoostCalibration()
  if path == "" {
    return cal, nil
  }

  raw, err := os.ReadFile(path)
  if err != nil {
    return cal, fmt.Errorf("read boost calibration %s: %w", path, err)
  }

  var overlay map[string]float64
  if err := yaml.Unmarshal(raw, &overlay); err != nil {
    return cal, fmt.Errorf("parse boost calibration %s: %w", path, err)
  }

  fields := map[string]*float64{
    "item_style_match":         &cal.ItemStyleMatch,
    "item_category_match":      &cal.ItemCategoryMatch,
    "item_price_tier_match":    &cal.ItemPriceTierMatch,
    "item_occasion_match":      &cal.ItemOccasionMatch,
    "module_aesthetic_match":   &cal.ModuleAestheticMatch,
    "module_category_match":    &cal.ModuleCategoryMatch,
    "module_price_tier_match":  &cal.ModulePriceTierMatch,
    "story_aesthetic_match":    &cal.StoryAestheticMatch,
    "story_category_match":     &cal.StoryCategoryMatch,
    "story_price_tier_match":   &cal.StoryPriceTierMatch,
    "story_recent_interaction": &cal.StoryRecentInteraction,
  }
  for key, value := range overlay {
    target, ok := fields[key]
    if !ok {
      return cal, fmt.Errorf("boost calibration %s: unknown key %q", path, key)
    }
    if value <= 0 {
      return cal, fmt.Errorf("boost calibration %s: %q must be positive, got %v", path, key, value)
    }
    *target = value
  }
  return cal, nil
}
