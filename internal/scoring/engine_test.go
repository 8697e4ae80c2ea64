package scoring

import (
	"math"
	"reflect"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestWeightTable(t *testing.T) {
	cases := []struct {
		et   EventType
		want float64
	}{
		{EventFollow, 1.0},
		{EventLike, 0.6},
		{EventSave, 0.9},
		{EventClick, 0.5},
		{EventAddToCart, 1.2},
		{EventPurchase, 1.5},
		{EventType("page_view"), 0.5},
		{EventType(""), 0.5},
	}
	for _, tc := range cases {
		if got := Weight(tc.et); !approx(got, tc.want) {
			t.Errorf("Weight(%q) = %v, want %v", tc.et, got, tc.want)
		}
	}
	if KnownEventType(EventType("page_view")) {
		t.Error("page_view should not be a known event type")
	}
	if !KnownEventType(EventPurchase) {
		t.Error("purchase should be a known event type")
	}
}

func TestFocusForCategory(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{"Handbags & Wallets", "bags"},
		{"Athletic & Sneakers", "active"},
		{"Activewear", "active"},
		{"Workwear", "workwear"},
		{"Dresses", "occasion"},
		{"Some New Category", "mixed"},
		{"", "mixed"},
	}
	for _, tc := range cases {
		if got := FocusForCategory(tc.category); got != tc.want {
			t.Errorf("FocusForCategory(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

func TestComputeLuxuryWorkwearPurchase(t *testing.T) {
	meta := SourceMetadata{
		Category:  "Workwear",
		PriceTier: "luxury",
	}
	u := Compute(1.5, EventPurchase, SourceProduct, meta)

	checks := []struct {
		dim   Dimension
		label string
		want  float64
	}{
		{DimPriceTier, "luxury", 1.5},
		{DimCategoryFocus, "workwear", 1.5},
		{DimQualityExpect, "luxury_quality_only", 0.4 * 1.5},
		{DimTrendLongevity, "timeless_only", 0.3 * 1.5},
		{DimWorkStyleDepth, "suiting_focused", 0.4 * 1.5},
		{DimWorkEnvironment, "corporate", 0.3 * 1.5},
		{DimMotivation, "investment_piece", 0.5},
		{DimDecisionSpeed, "quick_decider", 0.3},
	}
	for _, c := range checks {
		if got := u.Deltas[c.dim][c.label]; !approx(got, c.want) {
			t.Errorf("%s.%s = %v, want %v", c.dim, c.label, got, c.want)
		}
	}
	if !approx(u.CommerceIntentDelta, 0.2) {
		t.Errorf("commerce intent delta = %v, want 0.2", u.CommerceIntentDelta)
	}
}

func TestComputeInfluencerFollow(t *testing.T) {
	meta := SourceMetadata{
		StyleArchetype:         "minimal",
		PriceTier:              "premium",
		CategoryFocus:          "workwear",
		CommerceReadinessScore: 35,
	}
	u := Compute(1.0, EventFollow, SourceInfluencer, meta)

	checks := []struct {
		dim   Dimension
		label string
		want  float64
	}{
		{DimStyleArchetype, "minimal", 1.0},
		{DimPriceTier, "premium", 1.0},
		{DimCategoryFocus, "workwear", 1.0},
		{DimInfluencerInflu, "highly_influenced", 0.5},
		{DimBrandDiscovery, "influencer_discovery", 0.4},
		{DimSocialPresence, "highly_active", 0.3},
		{DimQualityExpect, "quality_over_quantity", 0.2 * 1.0},
	}
	for _, c := range checks {
		if got := u.Deltas[c.dim][c.label]; !approx(got, c.want) {
			t.Errorf("%s.%s = %v, want %v", c.dim, c.label, got, c.want)
		}
	}
	if !approx(u.CommerceIntentDelta, 0.1) {
		t.Errorf("commerce intent delta = %v, want 0.1", u.CommerceIntentDelta)
	}
}

func TestComputeCommerceReadinessBelowThreshold(t *testing.T) {
	u := Compute(1.0, EventFollow, SourceInfluencer, SourceMetadata{CommerceReadinessScore: 19.9})
	if u.CommerceIntentDelta != 0 {
		t.Errorf("commerce intent delta = %v, want 0", u.CommerceIntentDelta)
	}
}

func TestComputeListFractions(t *testing.T) {
	meta := SourceMetadata{
		StyleTags:          []string{"minimal", "classic"},
		DetailTags:         []string{"pleats"},
		SustainabilityTags: []string{"organic"},
		SeasonSuitability:  []string{"summer", "transitional"},
	}
	u := Compute(0.6, EventLike, SourceProduct, meta)

	checks := []struct {
		dim   Dimension
		label string
		want  float64
	}{
		{DimStyleTags, "minimal", 0.6 * 0.5},
		{DimStyleTags, "classic", 0.6 * 0.5},
		{DimDetailTags, "pleats", 0.6 * 0.7},
		{DimSustainability, "organic", 0.6 * 0.8},
		{DimSeason, "summer", 0.6 * 0.6},
		{DimSeason, "transitional", 0.6 * 0.6},
	}
	for _, c := range checks {
		if got := u.Deltas[c.dim][c.label]; !approx(got, c.want) {
			t.Errorf("%s.%s = %v, want %v", c.dim, c.label, got, c.want)
		}
	}
	// Non-empty sustainability tags also imply quality/longevity bumps.
	if got := u.Deltas[DimQualityExpect]["quality_over_quantity"]; !approx(got, 0.4*0.6) {
		t.Errorf("quality_over_quantity = %v, want %v", got, 0.4*0.6)
	}
}

func TestComputeBoldSignal(t *testing.T) {
	for _, meta := range []SourceMetadata{
		{PatternType: "animal_print"},
		{ColorPalette: "brights"},
	} {
		u := Compute(0.5, EventClick, SourceProduct, meta)
		if got := u.Deltas[DimStyleConfidence]["highly_confident"]; !approx(got, 0.3*0.5) {
			t.Errorf("meta %+v: highly_confident = %v, want %v", meta, got, 0.3*0.5)
		}
		if got := u.Deltas[DimRiskTolerance]["bold_experimenter"]; !approx(got, 0.2*0.5) {
			t.Errorf("meta %+v: bold_experimenter = %v, want %v", meta, got, 0.2*0.5)
		}
	}
}

// Zero-signal metadata: only event-type behavioral inferences remain.
func TestComputeZeroMetadata(t *testing.T) {
	u := Compute(0.5, EventClick, SourceProduct, SourceMetadata{})
	want := map[Dimension]map[string]float64{
		DimMotivation:    {"impulse": 0.2},
		DimDecisionSpeed: {"impulse_buyer": 0.1},
	}
	if !reflect.DeepEqual(u.Deltas, want) {
		t.Errorf("deltas = %v, want %v", u.Deltas, want)
	}
	if u.CommerceIntentDelta != 0 {
		t.Errorf("commerce intent delta = %v, want 0", u.CommerceIntentDelta)
	}
}

// The engine is pure: identical inputs give identical outputs and never
// mutate shared state.
func TestComputeDeterministic(t *testing.T) {
	meta := SourceMetadata{
		Category:           "Dresses",
		PriceTier:          "budget",
		StyleTags:          []string{"romantic"},
		SustainabilityTags: []string{"recycled"},
	}
	a := Compute(0.9, EventSave, SourceProduct, meta)
	b := Compute(0.9, EventSave, SourceProduct, meta)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated Compute differs: %v vs %v", a, b)
	}
}
