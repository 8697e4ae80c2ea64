package config

import (
  "os"
  "path/filepath"
  "testing"
)

func TestDefaultBoostCalibration(t *testing.T) {
  cal := DefaultBoostCalibration()
  if cal.ItemStyleMatch != 1.3 || cal.ItemCategoryMatch != 1.2 ||
    cal.ItemPriceTierMatch != 1.15 || cal.ItemOccasionMatch != 1.10 {
    t.Errorf("item defaults wrong: %+v", cal)
  }
  if cal.StoryRecentInteraction != 1.2 {
    t.Errorf("story recent interaction = %v, want 1.2", cal.StoryRecentInteraction)
  }
}

func writeCalibration(t *testing.T, content string) string {
  t.Helper()
  path := filepath.Join(t.TempDir(), "boost.yaml")
  if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
    t.Fatal(err)
  }
  return path
}

func TestLoadBoostCalibrationOverlay(t *testing.T) {
  path := writeCalibration(t, "item_style_match: 1.5\nstory_aesthetic_match: 1.25\n")

  cal, err := LoadBoostCalibration(path)
  if err != nil {
    t.Fatal(err)
  }
  if cal.ItemStyleMatch != 1.5 {
    t.Errorf("item_style_match = %v, want 1.5", cal.ItemStyleMatch)
  }
  if cal.StoryAestheticMatch != 1.25 {
    t.Errorf("story_aesthetic_match = %v, want 1.25", cal.StoryAestheticMatch)
  }
  // Untouched keys keep their compiled values.
  if cal.ItemCategoryMatch != 1.2 {
    t.Errorf("item_category_match = %v, want default 1.2", cal.ItemCategoryMatch)
  }
}

func TestLoadBoostCalibrationEmptyPathUsesDefaults(t *testing.T) {
  cal, err := LoadBoostCalibration("")
  if err != nil {
    t.Fatal(err)
  }
  if cal != DefaultBoostCalibration() {
    t.Errorf("expected defaults, got %+v", cal)
  }
}

func TestLoadBoostCalibrationRejectsBadInput(t *testing.T) {
  cases := []struct {
    name    string
    content string
  }{
    {"unknown key", "items_style_match: 1.5\n"},
    {"zero multiplier", "item_style_match: 0\n"},
    {"negative multiplier", "item_style_match: -1.3\n"},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      path := writeCalibration(t, tc.content)
      if _, err := LoadBoostCalibration(path); err == nil {
        t.Error("expected error, got nil")
      }
    })
  }
}
