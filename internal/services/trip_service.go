package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"sherpa/internal/models/db_models"
	"sherpa/internal/models/request_models"
	"sherpa/internal/models/response_models"
	"sherpa/internal/repositories"
	"sherpa/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (string, error)
	GetTrip(ctx context.Context, id string) (response_models.TripResponse, error)
	ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func (s *TripService) SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (string, error) {
	trip := &db_models.Trip{
		AccountID:   req.AccountID,
		Destination: req.Destination,
		Country:     req.Country,
		Emoji:       req.Emoji,
		Itinerary:   req.Itinerary,
		Highlights:  req.Highlights,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		log.Printf("Error saving trip: %v", err)
		return "", utils.ErrDatabaseError
	}

	return trip.ID.String(), nil
}

func (s *TripService) GetTrip(ctx context.Context, id string) (response_models.TripResponse, error) {
	trip, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching trip: %v", err)
		return response_models.TripResponse{}, utils.ErrDatabaseError
	}
	if trip == nil {
		return response_models.TripResponse{}, utils.ErrTripNotFound
	}

	return toTripResponse(*trip, true), nil
}

func (s *TripService) ListTrips(ctx context.Context, accountID string, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing trips: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		// Itinerary bodies are large; the list view only needs the card
		// fields.
		out = append(out, toTripResponse(trip, false))
	}
	return out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	existing, err := s.tripRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching trip: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrTripNotFound
	}

	if err := s.tripRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting trip: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toTripResponse(trip db_models.Trip, withItinerary bool) response_models.TripResponse {
	resp := response_models.TripResponse{
		ID:          trip.ID.String(),
		Destination: trip.Destination,
		Country:     trip.Country,
		Emoji:       trip.Emoji,
		Highlights:  trip.Highlights,
		SavedAt:     time.Unix(trip.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
	if withItinerary {
		resp.Itinerary = trip.Itinerary
	}
	return resp
}
