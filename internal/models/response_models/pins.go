package response_models

type Category string

const (
	CategoryRestaurant Category = "Restaurant"
	CategoryCafe       Category = "Cafe"
	CategoryBar        Category = "Bar"
	CategoryMuseum     Category = "Museum"
	CategoryAttraction Category = "Attraction"
	CategoryMarket     Category = "Market"
	CategoryPark       Category = "Park"
	CategoryViewpoint  Category = "Viewpoint"
	CategoryBeach      Category = "Beach"
	CategoryHotel      Category = "Hotel"
	CategoryOther      Category = "Other"
)

// Categories lists the closed set in display order. CategoryOther is
// the fallback for anything the extractor invents.
var Categories = []Category{
	CategoryRestaurant, CategoryCafe, CategoryBar, CategoryMuseum,
	CategoryAttraction, CategoryMarket, CategoryPark, CategoryViewpoint,
	CategoryBeach, CategoryHotel, CategoryOther,
}

func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// ExtractedPlace is a named place pulled out of the itinerary text
// before geocoding.
type ExtractedPlace struct {
	Name        string `json:"name"`
	Category    string `json:"type"`
	Description string `json:"description"`
}

// Pin is a place resolved for mapping. Lat/Lng stay nil when both
// geocode attempts failed; such pins are still listed, just unmapped.
type Pin struct {
	Name        string   `json:"name"`
	Category    Category `json:"type"`
	Description string   `json:"description,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Mapped reports whether the pin carries coordinates.
func (p Pin) Mapped() bool {
	return p.Lat != nil && p.Lng != nil
}

// Region is a padded bounding box for map-fit.
type Region struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}
