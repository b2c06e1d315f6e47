package request_models

type SaveTripRequest struct {
	AccountID   string   `json:"account_id" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	Country     string   `json:"country"`
	Emoji       string   `json:"emoji"`
	Itinerary   string   `json:"itinerary" binding:"required"`
	Highlights  []string `json:"highlights"`
}
