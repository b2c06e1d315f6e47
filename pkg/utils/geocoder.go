package utils

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type Coordinates struct {
	Lat float64
	Lng float64
}

// GeocoderInterface resolves a free-text place query to the best
// match. A nil result with nil error means the service answered but
// found nothing; callers treat both outcomes as "no coordinates".
type GeocoderInterface interface {
	Geocode(ctx context.Context, query string) (*Coordinates, error)
}

type GoogleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google maps api key is empty")
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (*Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	loc := results[0].Geometry.Location
	return &Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
