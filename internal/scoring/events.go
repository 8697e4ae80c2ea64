package scoring

// EventType is a discrete interaction against an influencer, product or
// retailer.
type EventType string

const (
	EventFollow    EventType = "follow"
	EventLike      EventType = "like"
	EventSave      EventType = "save"
	EventClick     EventType = "click"
	EventAddToCart EventType = "add_to_cart"
	EventPurchase  EventType = "purchase"
)

// SourceType selects which metadata provider resolves the event subject.
type SourceType string

const (
	SourceInfluencer SourceType = "influencer"
	SourceProduct    SourceType = "product"
	SourceRetailer   SourceType = "retailer"
)

// eventWeights is the fixed weight table. Weights are stamped onto the event
// ledger at ingestion time and never recomputed.
var eventWeights = map[EventType]float64{
	EventFollow:    1.0,
	EventLike:      0.6,
	EventSave:      0.9,
	EventClick:     0.5,
	EventAddToCart: 1.2,
	EventPurchase:  1.5,
}

const defaultEventWeight = 0.5

// Weight returns the table weight for the event type. Unrecognized types fall
// back to 0.5; callers that care should check KnownEventType and log.
func Weight(et EventType) float64 {
	if w, ok := eventWeights[et]; ok {
		return w
	}
	return defaultEventWeight
}

// KnownEventType reports whether the event type is in the weight table.
func KnownEventType(et EventType) bool {
	_, ok := eventWeights[et]
	return ok
}

// categoryFocusMap collapses catalog categories onto the category_focus
// vocabulary.
var categoryFocusMap = map[string]string{
	"Handbags & Wallets":  "bags",
	"Shoes":               "shoes",
	"Denim":               "denim",
	"Workwear":            "workwear",
	"Dresses":             "occasion",
	"Accessories":         "accessories",
	"Activewear":          "active",
	"Athletic & Sneakers": "active",
}

// FocusForCategory maps a catalog category to a category_focus label,
// defaulting to "mixed".
func FocusForCategory(category string) string {
	if focus, ok := categoryFocusMap[category]; ok {
		return focus
	}
	return "mixed"
}
