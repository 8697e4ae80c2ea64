package scoring

// Update is the engine output for one event: per-dimension score increments
// plus the commerce-intent delta. The profile store folds increments into the
// stored arena under a per-user lock, so the engine itself never reads
// current profile state.
type Update struct {
	Deltas              map[Dimension]map[string]float64
	CommerceIntentDelta float64
}

func (u *Update) add(dim Dimension, label string, amount float64) {
	if label == "" || amount == 0 {
		return
	}
	if u.Deltas == nil {
		u.Deltas = make(map[Dimension]map[string]float64)
	}
	labels := u.Deltas[dim]
	if labels == nil {
		labels = make(map[string]float64)
		u.Deltas[dim] = labels
	}
	labels[label] += amount
}

// directRule scores one categorical metadata field at full event weight.
type directRule struct {
	dim    Dimension
	source SourceType // "" = any source
	label  func(SourceMetadata) string
}

// listRule scores each tag of a list-valued metadata field at a fraction of
// the event weight.
type listRule struct {
	dim      Dimension
	fraction float64
	labels   func(SourceMetadata) []string
}

// bump is one fixed secondary increment.
type bump struct {
	dim    Dimension
	label  string
	amount float64
}

// condRule applies its bumps, scaled by event weight, when the metadata
// predicate holds.
type condRule struct {
	when  func(SourceMetadata) bool
	bumps []bump
}

var directRules = []directRule{
	{DimStyleArchetype, SourceInfluencer, func(m SourceMetadata) string { return m.StyleArchetype }},
	{DimCategoryFocus, SourceInfluencer, func(m SourceMetadata) string { return m.CategoryFocus }},
	{DimCategoryFocus, SourceProduct, func(m SourceMetadata) string {
		if m.Category == "" {
			return ""
		}
		return FocusForCategory(m.Category)
	}},
	{DimPriceTier, "", func(m SourceMetadata) string { return m.PriceTier }},
	{DimOccasion, SourceProduct, func(m SourceMetadata) string { return m.OccasionTag }},
	{DimColorPalette, SourceProduct, func(m SourceMetadata) string { return m.ColorPalette }},
	{DimPrimaryMaterial, SourceProduct, func(m SourceMetadata) string { return m.PrimaryMaterial }},
	{DimSilhouette, SourceProduct, func(m SourceMetadata) string { return m.SilhouetteType }},
	{DimPattern, SourceProduct, func(m SourceMetadata) string { return m.PatternType }},
	{DimCoverage, SourceProduct, func(m SourceMetadata) string { return m.CoverageLevel }},
}

var listRules = []listRule{
	{DimStyleTags, 0.5, func(m SourceMetadata) []string { return m.StyleTags }},
	{DimDetailTags, 0.7, func(m SourceMetadata) []string { return m.DetailTags }},
	{DimSustainability, 0.8, func(m SourceMetadata) []string { return m.SustainabilityTags }},
	{DimSeason, 0.6, func(m SourceMetadata) []string { return m.SeasonSuitability }},
}

// behaviorRules fire on the event type alone, independent of metadata. The
// amounts are calibrated per event type, so they are not rescaled by weight.
var behaviorRules = map[EventType][]bump{
	EventPurchase: {
		{DimMotivation, "investment_piece", 0.5},
		{DimDecisionSpeed, "quick_decider", 0.3},
	},
	EventSave: {
		{DimMotivation, "wardrobe_staple", 0.3},
		{DimDecisionSpeed, "researcher", 0.2},
		{DimOutfitPlanning, "planner", 0.2},
	},
	EventClick: {
		{DimMotivation, "impulse", 0.2},
		{DimDecisionSpeed, "impulse_buyer", 0.1},
	},
	EventAddToCart: {
		{DimBasketBuilding, "basket_builder", 0.2},
	},
	EventLike: {
		{DimSocialPresence, "moderately_active", 0.1},
	},
}

// influencerFollowBumps fire only on follow events whose subject is an
// influencer.
var influencerFollowBumps = []bump{
	{DimInfluencerInflu, "highly_influenced", 0.5},
	{DimBrandDiscovery, "influencer_discovery", 0.4},
	{DimSocialPresence, "highly_active", 0.3},
}

var condRules = []condRule{
	{
		when: func(m SourceMetadata) bool { return m.PriceTier == "luxury" },
		bumps: []bump{
			{DimQualityExpect, "luxury_quality_only", 0.4},
			{DimTrendLongevity, "timeless_only", 0.3},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.PriceTier == "budget" },
		bumps: []bump{
			{DimQualityExpect, "fast_fashion_acceptable", 0.3},
			{DimSaleStrategy, "discount_hunter", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.PriceTier == "premium" },
		bumps: []bump{
			{DimQualityExpect, "quality_over_quantity", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.Category == "Workwear" },
		bumps: []bump{
			{DimWorkStyleDepth, "suiting_focused", 0.4},
			{DimWorkEnvironment, "corporate", 0.3},
		},
	},
	{
		when: func(m SourceMetadata) bool {
			return m.Category == "Activewear" || m.Category == "Athletic & Sneakers"
		},
		bumps: []bump{
			{DimAthleisurePurpose, "lifestyle_athleisure", 0.3},
			{DimActivityLevel, "moderately_active", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool {
			return m.PrimaryMaterial == "cotton" || m.PrimaryMaterial == "knit"
		},
		bumps: []bump{
			{DimComfortPriority, "comfort_first", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool {
			return m.PatternType == "animal_print" || m.ColorPalette == "brights"
		},
		bumps: []bump{
			{DimStyleConfidence, "highly_confident", 0.3},
			{DimRiskTolerance, "bold_experimenter", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool { return len(m.SustainabilityTags) > 0 },
		bumps: []bump{
			{DimQualityExpect, "quality_over_quantity", 0.4},
			{DimTrendLongevity, "timeless_only", 0.3},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.ColorPalette == "neutrals" },
		bumps: []bump{
			{DimMonochromeDressing, "tonal_dresser", 0.2},
			{DimCapsuleTendency, "capsule_builder", 0.1},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.OccasionTag == "vacation" },
		bumps: []bump{
			{DimTravelFrequency, "frequent_traveler", 0.2},
		},
	},
	{
		when: func(m SourceMetadata) bool { return m.PrimaryMaterial == "linen" },
		bumps: []bump{
			{DimClimateContext, "warm_climate", 0.1},
		},
	},
	{
		when: func(m SourceMetadata) bool {
			return m.PatternType != "" && m.PatternType != "solid" && m.PatternType != "animal_print"
		},
		bumps: []bump{
			{DimPrintMixing, "print_friendly", 0.1},
		},
	},
}

// commerceReadinessThreshold gates the influencer-driven commerce-intent
// bump.
const commerceReadinessThreshold = 20

// Compute maps one weighted event and its resolved subject metadata to the
// full set of per-dimension increments. Pure: no I/O, no shared state.
func Compute(weight float64, eventType EventType, sourceType SourceType, meta SourceMetadata) Update {
	var u Update

	for _, r := range directRules {
		if r.source != "" && r.source != sourceType {
			continue
		}
		u.add(r.dim, r.label(meta), weight)
	}

	for _, r := range listRules {
		for _, tag := range r.labels(meta) {
			u.add(r.dim, tag, weight*r.fraction)
		}
	}

	for _, b := range behaviorRules[eventType] {
		u.add(b.dim, b.label, b.amount)
	}
	if eventType == EventFollow && sourceType == SourceInfluencer {
		for _, b := range influencerFollowBumps {
			u.add(b.dim, b.label, b.amount)
		}
	}

	for _, r := range condRules {
		if !r.when(meta) {
			continue
		}
		for _, b := range r.bumps {
			u.add(b.dim, b.label, b.amount*weight)
		}
	}

	if sourceType == SourceInfluencer && meta.CommerceReadinessScore >= commerceReadinessThreshold {
		u.CommerceIntentDelta += 0.1
	}
	if eventType == EventPurchase {
		u.CommerceIntentDelta += 0.2
	}

	return u
}
