package services

import (
	"context"
	"log"
	"strings"

	"sherpa/internal/models/response_models"
	"sherpa/pkg/utils"
)

type ExtractServiceInterface interface {
	ExtractPlaces(ctx context.Context, itinerary, destCity string) ([]response_models.ExtractedPlace, error)
}

type ExtractService struct {
	extractor utils.PlaceExtractorInterface
}

func NewExtractService(extractor utils.PlaceExtractorInterface) ExtractServiceInterface {
	return &ExtractService{extractor: extractor}
}

// ExtractPlaces asks the model for named places in the itinerary and
// normalizes the result: blank names are dropped and any category
// outside the known set becomes Other.
func (s *ExtractService) ExtractPlaces(ctx context.Context, itinerary, destCity string) ([]response_models.ExtractedPlace, error) {
	if strings.TrimSpace(itinerary) == "" {
		return []response_models.ExtractedPlace{}, nil
	}

	raw, err := s.extractor.ExtractPlaces(ctx, itinerary, destCity)
	if err != nil {
		log.Printf("Error extracting places for %s: %v", destCity, err)
		return nil, utils.ErrExtractionFailed
	}

	places := make([]response_models.ExtractedPlace, 0, len(raw))
	for _, p := range raw {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		p.Category = string(response_models.ParseCategory(p.Category))
		places = append(places, p)
	}
	return places, nil
}
