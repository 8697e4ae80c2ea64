package scoring

// SourceMetadata carries the descriptive attributes of an event's subject.
// A zero value is the "{}" case: the subject could not be resolved and only
// event-type behavioral inferences apply.
type SourceMetadata struct {
	// Influencer fields.
	StyleArchetype         string  `json:"style_archetype,omitempty"`
	CategoryFocus          string  `json:"category_focus,omitempty"`
	CommerceReadinessScore float64 `json:"commerce_readiness_score,omitempty"`

	// Product fields.
	Category           string   `json:"category,omitempty"`
	OccasionTag        string   `json:"occasion_tag,omitempty"`
	StyleTags          []string `json:"style_tags,omitempty"`
	ColorPalette       string   `json:"color_palette,omitempty"`
	PrimaryMaterial    string   `json:"primary_material,omitempty"`
	SilhouetteType     string   `json:"silhouette_type,omitempty"`
	DetailTags         []string `json:"detail_tags,omitempty"`
	PatternType        string   `json:"pattern_type,omitempty"`
	CoverageLevel      string   `json:"coverage_level,omitempty"`
	SustainabilityTags []string `json:"sustainability_tags,omitempty"`
	SeasonSuitability  []string `json:"season_suitability,omitempty"`

	// Shared.
	PriceTier string `json:"price_tier,omitempty"`
}

// IsZero reports whether no attribute was resolved.
func (m SourceMetadata) IsZero() bool {
	return m.StyleArchetype == "" && m.CategoryFocus == "" && m.CommerceReadinessScore == 0 &&
		m.Category == "" && m.OccasionTag == "" && len(m.StyleTags) == 0 &&
		m.ColorPalette == "" && m.PrimaryMaterial == "" && m.SilhouetteType == "" &&
		len(m.DetailTags) == 0 && m.PatternType == "" && m.CoverageLevel == "" &&
		len(m.SustainabilityTags) == 0 && len(m.SeasonSuitability) == 0 && m.PriceTier == ""
}
