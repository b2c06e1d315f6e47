package response_models

// Section keys are fixed; the parser always materializes all four so
// clients never need to nil-check the map.
const (
	SectionGettingThere = "getting_there"
	SectionGettingHome  = "getting_home"
	SectionCost         = "cost"
	SectionTips         = "tips"
)

type BlockKind string

const (
	BlockTime     BlockKind = "time"
	BlockMeal     BlockKind = "meal"
	BlockActivity BlockKind = "activity"
)

// Block is one rendered unit inside a day. Kind selects which fields
// are meaningful: time blocks use Title, meal blocks use MealType,
// VenueName and Subtitle, activity blocks use Title and Subtitle.
type Block struct {
	Kind      BlockKind `json:"kind"`
	Title     string    `json:"title,omitempty"`
	MealType  string    `json:"meal_type,omitempty"`
	VenueName *string   `json:"venue_name,omitempty"`
	Subtitle  *string   `json:"subtitle,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Details   []string  `json:"details"`
}

type Day struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// ItineraryDocument is the structured form of one AI-written itinerary.
// Days are in source order; Sections holds the non-day text grouped
// under the four fixed keys.
type ItineraryDocument struct {
	Days     []Day               `json:"days"`
	Sections map[string][]string `json:"sections"`
}

func NewItineraryDocument() ItineraryDocument {
	return ItineraryDocument{
		Days: []Day{},
		Sections: map[string][]string{
			SectionGettingThere: {},
			SectionGettingHome:  {},
			SectionCost:         {},
			SectionTips:         {},
		},
	}
}
