package scoring

// Dimension identifies one preference axis in the style profile. Each
// dimension is a label -> accumulated score map on the profile record.
type Dimension string

// Family groups dimensions for reporting; it has no effect on scoring.
type Family string

const (
	FamilyAesthetic Family = "aesthetic"
	FamilyGarment   Family = "garment"
	FamilyCommerce  Family = "commerce"
	FamilyBehavior  Family = "behavior"
	FamilySocial    Family = "social"
	FamilyContext   Family = "context"
)

const (
	DimStyleArchetype     Dimension = "style_archetype"
	DimPriceTier          Dimension = "price_tier"
	DimCategoryFocus      Dimension = "category_focus"
	DimOccasion           Dimension = "occasion"
	DimColorPalette       Dimension = "color_palette"
	DimPrimaryMaterial    Dimension = "primary_material"
	DimSilhouette         Dimension = "silhouette"
	DimStyleTags          Dimension = "style_tags"
	DimDetailTags         Dimension = "detail_tags"
	DimSustainability     Dimension = "sustainability"
	DimSeason             Dimension = "season"
	DimPattern            Dimension = "pattern"
	DimCoverage           Dimension = "coverage"
	DimMotivation         Dimension = "motivation"
	DimDecisionSpeed      Dimension = "decision_speed"
	DimInfluencerInflu    Dimension = "influencer_influence"
	DimBrandDiscovery     Dimension = "brand_discovery"
	DimSocialPresence     Dimension = "social_media_presence"
	DimQualityExpect      Dimension = "quality_expectations"
	DimTrendLongevity     Dimension = "trend_longevity"
	DimSaleStrategy       Dimension = "sale_strategy"
	DimWorkStyleDepth     Dimension = "work_style_depth"
	DimWorkEnvironment    Dimension = "work_environment"
	DimAthleisurePurpose  Dimension = "athleisure_purpose"
	DimActivityLevel      Dimension = "activity_level"
	DimComfortPriority    Dimension = "comfort_priority"
	DimStyleConfidence    Dimension = "style_confidence"
	DimRiskTolerance      Dimension = "risk_tolerance"
	DimBasketBuilding     Dimension = "basket_building"
	DimOutfitPlanning     Dimension = "outfit_planning"
	DimMonochromeDressing Dimension = "monochrome_dressing"
	DimCapsuleTendency    Dimension = "capsule_tendency"
	DimTravelFrequency    Dimension = "travel_frequency"
	DimClimateContext     Dimension = "climate_context"
	DimPrintMixing        Dimension = "print_mixing"
)

// Spec describes one registered dimension. Vocabulary is the controlled label
// set; an empty vocabulary means the dimension accepts free-form labels
// (tag-fed dimensions inherit catalog vocabularies we do not own).
type Spec struct {
	ID         Dimension
	Family     Family
	Vocabulary []string
}

// registry lists every dimension the profile carries. Dimensions without an
// ingestion rule yet still reserve their column in the layer arena so
// downstream readers see a stable shape.
var registry = []Spec{
	{DimStyleArchetype, FamilyAesthetic, []string{"minimal", "streetwear", "glam", "classic", "boho", "athleisure", "romantic", "edgy", "preppy", "avant_garde"}},
	{DimPriceTier, FamilyCommerce, []string{"budget", "mid", "premium", "luxury"}},
	{DimCategoryFocus, FamilyGarment, []string{"bags", "shoes", "denim", "workwear", "occasion", "accessories", "active", "mixed"}},
	{DimOccasion, FamilyContext, []string{"work", "event", "casual", "athleisure", "vacation", "wedding_guest"}},
	{DimColorPalette, FamilyAesthetic, []string{"neutrals", "brights", "pastels", "earth_tones", "monochrome", "jewel_tones"}},
	{DimPrimaryMaterial, FamilyGarment, []string{"cotton", "knit", "silk", "leather", "denim", "linen", "wool", "synthetic"}},
	{DimSilhouette, FamilyGarment, []string{"fitted", "relaxed", "oversized", "tailored", "flowy", "structured"}},
	{DimStyleTags, FamilyAesthetic, nil},
	{DimDetailTags, FamilyGarment, nil},
	{DimSustainability, FamilyCommerce, []string{"organic", "recycled", "fair_trade", "vegan", "deadstock", "secondhand"}},
	{DimSeason, FamilyContext, []string{"spring", "summer", "fall", "winter", "transitional"}},
	{DimPattern, FamilyAesthetic, []string{"solid", "floral", "stripes", "plaid", "animal_print", "abstract", "polka_dot"}},
	{DimCoverage, FamilyGarment, []string{"minimal", "moderate", "full"}},
	{DimMotivation, FamilyBehavior, []string{"investment_piece", "wardrobe_staple", "impulse", "trend_chasing", "replacement", "gifting"}},
	{DimDecisionSpeed, FamilyBehavior, []string{"quick_decider", "researcher", "impulse_buyer", "deliberate"}},
	{DimInfluencerInflu, FamilySocial, []string{"highly_influenced", "moderately_influenced", "independent"}},
	{DimBrandDiscovery, FamilySocial, []string{"influencer_discovery", "organic_search", "social_ads", "word_of_mouth", "editorial"}},
	{DimSocialPresence, FamilySocial, []string{"highly_active", "moderately_active", "lurker", "inactive"}},
	{DimQualityExpect, FamilyCommerce, []string{"luxury_quality_only", "quality_over_quantity", "fast_fashion_acceptable", "durability_focused"}},
	{DimTrendLongevity, FamilyAesthetic, []string{"timeless_only", "trend_aware", "trend_driven", "micro_trend_chaser"}},
	{DimSaleStrategy, FamilyCommerce, []string{"discount_hunter", "full_price_loyal", "seasonal_sale_shopper", "outlet_shopper"}},
	{DimWorkStyleDepth, FamilyContext, []string{"suiting_focused", "business_casual", "creative_professional", "uniform_adjacent"}},
	{DimWorkEnvironment, FamilyContext, []string{"corporate", "hybrid", "remote", "client_facing", "creative_studio"}},
	{DimAthleisurePurpose, FamilyGarment, []string{"performance_athletic", "lifestyle_athleisure", "studio_to_street", "loungewear"}},
	{DimActivityLevel, FamilyBehavior, []string{"highly_active", "moderately_active", "lightly_active", "sedentary"}},
	{DimComfortPriority, FamilyBehavior, []string{"comfort_first", "balanced", "style_first"}},
	{DimStyleConfidence, FamilyBehavior, []string{"highly_confident", "confident", "cautious", "conservative"}},
	{DimRiskTolerance, FamilyBehavior, []string{"bold_experimenter", "selective_experimenter", "safe_shopper"}},
	{DimBasketBuilding, FamilyCommerce, []string{"basket_builder", "single_item_shopper"}},
	{DimOutfitPlanning, FamilyBehavior, []string{"planner", "spontaneous"}},
	{DimMonochromeDressing, FamilyAesthetic, []string{"tonal_dresser", "contrast_dresser"}},
	{DimCapsuleTendency, FamilyBehavior, []string{"capsule_builder", "maximalist_closet"}},
	{DimTravelFrequency, FamilyContext, []string{"frequent_traveler", "occasional_traveler", "homebody"}},
	{DimClimateContext, FamilyContext, []string{"warm_climate", "cold_climate", "four_season"}},
	{DimPrintMixing, FamilyAesthetic, []string{"print_friendly", "solids_only"}},

	// Reserved axes: registered for arena shape and vocabulary control, fed by
	// rules added dimension-by-dimension as new signals come online.
	{"fit_preference", FamilyGarment, []string{"true_to_size", "sized_up", "sized_down", "tailored_fit"}},
	{"neckline", FamilyGarment, []string{"crew", "v_neck", "scoop", "square", "halter", "off_shoulder", "turtleneck"}},
	{"sleeve_style", FamilyGarment, []string{"sleeveless", "short", "long", "puff", "bell", "raglan"}},
	{"hemline", FamilyGarment, []string{"cropped", "hip", "tunic", "midi", "maxi"}},
	{"rise_preference", FamilyGarment, []string{"low_rise", "mid_rise", "high_rise"}},
	{"denim_wash", FamilyGarment, []string{"light", "medium", "dark", "black", "raw", "distressed"}},
	{"heel_height", FamilyGarment, []string{"flat", "low", "mid", "high", "platform"}},
	{"shoe_style", FamilyGarment, []string{"sneaker", "boot", "loafer", "heel", "sandal", "flat"}},
	{"bag_size", FamilyGarment, []string{"micro", "small", "medium", "tote", "oversized"}},
	{"bag_style", FamilyGarment, []string{"crossbody", "shoulder", "tote", "clutch", "backpack", "belt_bag"}},
	{"jewelry_metal", FamilyAesthetic, []string{"gold", "silver", "mixed_metal", "rose_gold"}},
	{"jewelry_scale", FamilyAesthetic, []string{"dainty", "medium", "statement"}},
	{"layering_affinity", FamilyAesthetic, []string{"heavy_layerer", "light_layerer", "single_layer"}},
	{"outerwear_style", FamilyGarment, []string{"blazer", "trench", "puffer", "leather_jacket", "cardigan", "parka"}},
	{"dress_length", FamilyGarment, []string{"mini", "knee", "midi", "maxi"}},
	{"skirt_style", FamilyGarment, []string{"pencil", "a_line", "pleated", "slip", "wrap"}},
	{"trouser_style", FamilyGarment, []string{"straight", "wide_leg", "skinny", "flare", "cargo", "pleated"}},
	{"top_style", FamilyGarment, []string{"tee", "blouse", "bodysuit", "tank", "button_down", "sweater"}},
	{"knitwear_weight", FamilyGarment, []string{"fine_gauge", "mid_gauge", "chunky"}},
	{"fabric_weight", FamilyGarment, []string{"lightweight", "midweight", "heavyweight"}},
	{"texture_preference", FamilyAesthetic, []string{"smooth", "textured", "mixed_texture"}},
	{"sheen_preference", FamilyAesthetic, []string{"matte", "satin", "high_shine"}},
	{"embellishment_tolerance", FamilyAesthetic, []string{"none", "subtle", "statement"}},
	{"logo_visibility", FamilyAesthetic, []string{"logo_free", "subtle_logo", "logo_forward"}},
	{"brand_loyalty", FamilyCommerce, []string{"loyalist", "rotating_favorites", "explorer"}},
	{"brand_tier_mix", FamilyCommerce, []string{"high_low_mixer", "tier_consistent"}},
	{"retailer_affinity", FamilyCommerce, []string{"department_store", "boutique", "direct_to_consumer", "marketplace"}},
	{"marketplace_comfort", FamilyCommerce, []string{"marketplace_native", "marketplace_wary"}},
	{"resale_participation", FamilyCommerce, []string{"buys_resale", "sells_resale", "both", "neither"}},
	{"rental_openness", FamilyCommerce, []string{"rents", "rental_curious", "ownership_only"}},
	{"customization_interest", FamilyCommerce, []string{"monogrammer", "made_to_measure", "off_the_rack"}},
	{"size_consistency", FamilyBehavior, []string{"consistent", "varies_by_brand"}},
	{"fit_risk_tolerance", FamilyBehavior, []string{"orders_multiple_sizes", "single_size_confident"}},
	{"return_likelihood", FamilyBehavior, []string{"frequent_returner", "occasional_returner", "keeper"}},
	{"repeat_purchase", FamilyBehavior, []string{"rebuyer", "one_and_done"}},
	{"replenishment_cadence", FamilyBehavior, []string{"weekly", "monthly", "seasonal", "rare"}},
	{"gifting_behavior", FamilyBehavior, []string{"frequent_gifter", "occasional_gifter", "self_only"}},
	{"self_purchase_ratio", FamilyBehavior, []string{"mostly_self", "balanced", "mostly_gifts"}},
	{"price_sensitivity", FamilyCommerce, []string{"highly_sensitive", "moderately_sensitive", "insensitive"}},
	{"splurge_category", FamilyCommerce, []string{"bags", "shoes", "outerwear", "jewelry", "denim"}},
	{"budget_allocation", FamilyCommerce, []string{"few_expensive", "many_affordable", "mixed"}},
	{"payment_preference", FamilyCommerce, []string{"pay_in_full", "installments", "store_credit"}},
	{"promo_responsiveness", FamilyCommerce, []string{"promo_driven", "promo_aware", "promo_indifferent"}},
	{"loyalty_program_engagement", FamilyCommerce, []string{"points_optimizer", "casual_member", "non_member"}},
	{"new_arrival_affinity", FamilyCommerce, []string{"first_drop_shopper", "waits_for_reviews", "end_of_season"}},
	{"archive_affinity", FamilyAesthetic, []string{"vintage_lover", "archive_curious", "new_only"}},
	{"collab_interest", FamilyCommerce, []string{"collab_chaser", "collab_aware", "indifferent"}},
	{"limited_edition_urgency", FamilyCommerce, []string{"fomo_driven", "measured", "unmoved"}},
	{"celebrity_influence", FamilySocial, []string{"celebrity_led", "celebrity_aware", "uninfluenced"}},
	{"editorial_influence", FamilySocial, []string{"magazine_reader", "blog_reader", "none"}},
	{"peer_influence", FamilySocial, []string{"friend_led", "self_directed"}},
	{"ugc_trust", FamilySocial, []string{"ugc_first", "mixed_sources", "editorial_first"}},
	{"review_reliance", FamilySocial, []string{"review_dependent", "review_curious", "review_skipper"}},
	{"video_content_affinity", FamilySocial, []string{"video_first", "image_first", "text_first"}},
	{"livestream_shopping", FamilySocial, []string{"live_buyer", "live_watcher", "non_viewer"}},
	{"social_platform_primary", FamilySocial, []string{"instagram", "tiktok", "pinterest", "youtube", "none"}},
	{"content_creation", FamilySocial, []string{"creator", "occasional_poster", "consumer_only"}},
	{"community_participation", FamilySocial, []string{"active_commenter", "lurker", "offline"}},
	{"city_context", FamilyContext, []string{"major_metro", "mid_size_city", "suburban", "rural"}},
	{"event_calendar_density", FamilyContext, []string{"event_heavy", "moderate", "sparse"}},
	{"life_stage", FamilyContext, []string{"student", "early_career", "established", "parent", "retired"}},
	{"modesty_preference", FamilyGarment, []string{"modest", "moderate", "unrestricted"}},
	{"color_season_alignment", FamilyAesthetic, []string{"warm_tones", "cool_tones", "neutral_tones"}},
	{"accessory_density", FamilyAesthetic, []string{"minimal_accessories", "moderate_accessories", "heavily_accessorized"}},
	{"occasion_breadth", FamilyContext, []string{"single_occasion", "multi_occasion", "full_spectrum"}},
}

var registryByID = func() map[Dimension]Spec {
	m := make(map[Dimension]Spec, len(registry))
	for _, s := range registry {
		m[s.ID] = s
	}
	return m
}()

// Dimensions returns the registered dimension specs in registration order.
func Dimensions() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}

// Known reports whether the dimension is registered and, for closed
// vocabularies, whether the label belongs to it. Open-vocabulary dimensions
// accept any non-empty label.
func Known(dim Dimension, label string) bool {
	spec, ok := registryByID[dim]
	if !ok {
		return false
	}
	if len(spec.Vocabulary) == 0 {
		return label != ""
	}
	for _, v := range spec.Vocabulary {
		if v == label {
			return true
		}
	}
	return false
}
