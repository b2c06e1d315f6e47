package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"sherpa/internal/models/response_models"
	mem "sherpa/pkg/memcache"
	"sherpa/pkg/utils"
)

// GeocodeInterval is the minimum gap between external geocode calls.
// The geocoding service is a shared rate-limited resource; this pacing
// is a fair-use obligation, not a tunable. Do not parallelize the
// resolver without keeping an equivalent throttle.
const GeocodeInterval = 300 * time.Millisecond

// PacerInterface gates each external lookup. Production uses a token
// bucket; tests inject a recorder to assert call cadence without
// sleeping.
type PacerInterface interface {
	Wait(ctx context.Context) error
}

type intervalPacer struct {
	limiter *rate.Limiter
}

func NewIntervalPacer(interval time.Duration) PacerInterface {
	return &intervalPacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (p *intervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

type PinServiceInterface interface {
	ResolvePins(ctx context.Context, places []response_models.ExtractedPlace, cityHint string) []response_models.Pin
	MapItinerary(ctx context.Context, itinerary, destCity string) ([]response_models.Pin, error)
}

type PinService struct {
	extractService ExtractServiceInterface
	geocoder       utils.GeocoderInterface
	cache          mem.GeocodeStore
	pacer          PacerInterface
}

func NewPinService(
	extractService ExtractServiceInterface,
	geocoder utils.GeocoderInterface,
	cache mem.GeocodeStore,
	pacer PacerInterface,
) PinServiceInterface {
	return &PinService{
		extractService: extractService,
		geocoder:       geocoder,
		cache:          cache,
		pacer:          pacer,
	}
}

// MapItinerary extracts named places from the itinerary text and
// resolves them to pins.
func (s *PinService) MapItinerary(ctx context.Context, itinerary, destCity string) ([]response_models.Pin, error) {
	places, err := s.extractService.ExtractPlaces(ctx, itinerary, destCity)
	if err != nil {
		return nil, err
	}
	return s.ResolvePins(ctx, places, destCity), nil
}

// ResolvePins geocodes each place strictly in order. Every input place
// yields exactly one output pin; lookup failures leave that pin
// unmapped and never abort the batch. A cancelled context abandons the
// remaining lookups: already-resolved pins are returned and the rest
// come back unmapped. An in-flight call is never cut off between the
// lookup and its cache write.
func (s *PinService) ResolvePins(ctx context.Context, places []response_models.ExtractedPlace, cityHint string) []response_models.Pin {
	pins := make([]response_models.Pin, 0, len(places))

	for _, place := range places {
		pin := response_models.Pin{
			Name:        place.Name,
			Category:    response_models.ParseCategory(place.Category),
			Description: place.Description,
		}

		if ctx.Err() != nil {
			pins = append(pins, pin)
			continue
		}

		if coords, ok := s.cache.Get(place.Name, cityHint); ok {
			pin.Lat, pin.Lng = ref(coords.Lat), ref(coords.Lng)
			pins = append(pins, pin)
			continue
		}

		if coords := s.lookup(ctx, place.Name, cityHint); coords != nil {
			s.cache.Add(place.Name, cityHint, *coords)
			pin.Lat, pin.Lng = ref(coords.Lat), ref(coords.Lng)
		}
		pins = append(pins, pin)
	}

	return pins
}

// lookup runs the two-tier query: the city-qualified form first, the
// bare name as fallback. Each external call waits on the pacer.
func (s *PinService) lookup(ctx context.Context, name, cityHint string) *utils.Coordinates {
	queries := []string{name + ", " + cityHint, name}
	for _, q := range queries {
		if err := s.pacer.Wait(ctx); err != nil {
			return nil
		}
		coords, err := s.geocoder.Geocode(ctx, q)
		if err != nil {
			log.Printf("Geocode failed for %q: %v", q, err)
			continue
		}
		if coords != nil {
			return coords
		}
	}
	return nil
}

func ref(v float64) *float64 {
	return &v
}
