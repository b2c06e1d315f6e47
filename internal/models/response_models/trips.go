package response_models

type TripResponse struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Country     string   `json:"country,omitempty"`
	Emoji       string   `json:"emoji,omitempty"`
	Itinerary   string   `json:"itinerary,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	SavedAt     string   `json:"saved_at"`
}
