package request_models

type ParseItineraryRequest struct {
	Itinerary string `json:"itinerary" binding:"required"`
}

type TweakItineraryRequest struct {
	Destination string `json:"dest" binding:"required"`
	Itinerary   string `json:"itinerary" binding:"required"`
	Feedback    string `json:"feedback" binding:"required"`
}
