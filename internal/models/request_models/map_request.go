package request_models

import "sherpa/internal/models/response_models"

type MapPinsRequest struct {
	Itinerary string `json:"itinerary" binding:"required"`
	DestCity  string `json:"dest_city" binding:"required"`
}

// ExportRequest carries pins the client already resolved; exports never
// trigger new geocoding.
type ExportRequest struct {
	City string                `json:"city" binding:"required"`
	Pins []response_models.Pin `json:"pins" binding:"required"`
}

type RegionRequest struct {
	Pins     []response_models.Pin `json:"pins" binding:"required"`
	Category string                `json:"category"`
}
