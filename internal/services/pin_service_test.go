package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sherpa/internal/models/response_models"
	mem "sherpa/pkg/memcache"
	"sherpa/pkg/utils"
)

type fakeGeocoder struct {
	results map[string]utils.Coordinates
	err     error
	queries []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, query string) (*utils.Coordinates, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if coords, ok := f.results[query]; ok {
		return &coords, nil
	}
	return nil, nil
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(_ context.Context) error {
	p.waits++
	return nil
}

type fakeExtractor struct {
	places []response_models.ExtractedPlace
	err    error
}

func (f *fakeExtractor) ExtractPlaces(_ context.Context, _, _ string) ([]response_models.ExtractedPlace, error) {
	return f.places, f.err
}

func newTestPinService(t *testing.T, geocoder utils.GeocoderInterface, pacer PacerInterface) (PinServiceInterface, *mem.GeocodeCache) {
	t.Helper()
	cache, err := mem.NewGeocodeCache(16)
	require.NoError(t, err)
	extract := NewExtractService(&fakeExtractor{})
	return NewPinService(extract, geocoder, cache, pacer), cache
}

func TestResolvePinsCityQualifiedQuery(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]utils.Coordinates{
		"Ljubljana Castle, Ljubljana": {Lat: 46.0489, Lng: 14.5083},
	}}
	pacer := &countingPacer{}
	svc, _ := newTestPinService(t, geocoder, pacer)

	pins := svc.ResolvePins(context.Background(), []response_models.ExtractedPlace{
		{Name: "Ljubljana Castle", Category: "Attraction"},
	}, "Ljubljana")

	require.Len(t, pins, 1)
	require.True(t, pins[0].Mapped())
	assert.Equal(t, 46.0489, *pins[0].Lat)
	assert.Equal(t, 14.5083, *pins[0].Lng)
	assert.Equal(t, []string{"Ljubljana Castle, Ljubljana"}, geocoder.queries)
	assert.Equal(t, 1, pacer.waits)
}

func TestResolvePinsFallsBackToBareName(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]utils.Coordinates{
		"Lake Bled": {Lat: 46.3625, Lng: 14.0936},
	}}
	pacer := &countingPacer{}
	svc, _ := newTestPinService(t, geocoder, pacer)

	pins := svc.ResolvePins(context.Background(), []response_models.ExtractedPlace{
		{Name: "Lake Bled", Category: "Attraction"},
	}, "Ljubljana")

	require.Len(t, pins, 1)
	require.True(t, pins[0].Mapped())
	assert.Equal(t, []string{"Lake Bled, Ljubljana", "Lake Bled"}, geocoder.queries)
	assert.Equal(t, 2, pacer.waits)
}

func TestResolvePinsBothTiersFail(t *testing.T) {
	geocoder := &fakeGeocoder{}
	svc, cache := newTestPinService(t, geocoder, &countingPacer{})

	pins := svc.ResolvePins(context.Background(), []response_models.ExtractedPlace{
		{Name: "Nowhere Special", Category: "Bar"},
		{Name: "Tivoli Park", Category: "Park"},
	}, "Ljubljana")

	// Every input place yields a pin, mapped or not.
	require.Len(t, pins, 2)
	assert.False(t, pins[0].Mapped())
	assert.Equal(t, "Nowhere Special", pins[0].Name)
	assert.False(t, pins[1].Mapped())
	// Failures are never cached.
	assert.Equal(t, 0, cache.Len())
}

func TestResolvePinsGeocoderErrorIsolated(t *testing.T) {
	geocoder := &fakeGeocoder{err: errors.New("quota exceeded")}
	svc, _ := newTestPinService(t, geocoder, &countingPacer{})

	pins := svc.ResolvePins(context.Background(), []response_models.ExtractedPlace{
		{Name: "A", Category: "Cafe"},
		{Name: "B", Category: "Cafe"},
	}, "Ljubljana")

	require.Len(t, pins, 2)
	assert.False(t, pins[0].Mapped())
	assert.False(t, pins[1].Mapped())
}

func TestResolvePinsCacheShortCircuits(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]utils.Coordinates{
		"Ljubljana Castle, Ljubljana": {Lat: 46.0489, Lng: 14.5083},
	}}
	pacer := &countingPacer{}
	svc, cache := newTestPinService(t, geocoder, pacer)

	places := []response_models.ExtractedPlace{{Name: "Ljubljana Castle", Category: "Attraction"}}
	svc.ResolvePins(context.Background(), places, "Ljubljana")
	require.Equal(t, 1, cache.Len())

	svc.ResolvePins(context.Background(), places, "Ljubljana")

	// The second pass answers from the cache without touching the
	// geocoder or the pacer.
	assert.Len(t, geocoder.queries, 1)
	assert.Equal(t, 1, pacer.waits)
}

func TestResolvePinsEveryExternalCallPaced(t *testing.T) {
	geocoder := &fakeGeocoder{}
	pacer := &countingPacer{}
	svc, _ := newTestPinService(t, geocoder, pacer)

	places := []response_models.ExtractedPlace{
		{Name: "A"}, {Name: "B"}, {Name: "C"},
	}
	svc.ResolvePins(context.Background(), places, "X")

	// Both tiers fail for all three places: six external calls, each
	// behind a pacer wait.
	assert.Equal(t, 6, len(geocoder.queries))
	assert.Equal(t, 6, pacer.waits)
}

func TestResolvePinsCancelledContext(t *testing.T) {
	geocoder := &fakeGeocoder{results: map[string]utils.Coordinates{
		"A, X": {Lat: 1, Lng: 2},
	}}
	svc, _ := newTestPinService(t, geocoder, &countingPacer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pins := svc.ResolvePins(ctx, []response_models.ExtractedPlace{
		{Name: "A"}, {Name: "B"},
	}, "X")

	require.Len(t, pins, 2)
	assert.False(t, pins[0].Mapped())
	assert.False(t, pins[1].Mapped())
	assert.Empty(t, geocoder.queries)
}

func TestResolvePinsUnknownCategoryBecomesOther(t *testing.T) {
	svc, _ := newTestPinService(t, &fakeGeocoder{}, &countingPacer{})

	pins := svc.ResolvePins(context.Background(), []response_models.ExtractedPlace{
		{Name: "Mystery Spot", Category: "Spaceport"},
	}, "X")

	require.Len(t, pins, 1)
	assert.Equal(t, response_models.CategoryOther, pins[0].Category)
}

func TestMapItineraryExtractionError(t *testing.T) {
	cache, err := mem.NewGeocodeCache(16)
	require.NoError(t, err)
	extract := NewExtractService(&fakeExtractor{err: errors.New("model timeout")})
	svc := NewPinService(extract, &fakeGeocoder{}, cache, &countingPacer{})

	_, err = svc.MapItinerary(context.Background(), "## Day 1", "Ljubljana")
	assert.ErrorIs(t, err, utils.ErrExtractionFailed)
}

func TestMapItinerary(t *testing.T) {
	cache, err := mem.NewGeocodeCache(16)
	require.NoError(t, err)
	extract := NewExtractService(&fakeExtractor{places: []response_models.ExtractedPlace{
		{Name: "  Tivoli Park ", Category: "Park"},
		{Name: "", Category: "Cafe"},
	}})
	geocoder := &fakeGeocoder{results: map[string]utils.Coordinates{
		"Tivoli Park, Ljubljana": {Lat: 46.0569, Lng: 14.4892},
	}}
	svc := NewPinService(extract, geocoder, cache, &countingPacer{})

	pins, err := svc.MapItinerary(context.Background(), "## Day 1\n- Tivoli Park", "Ljubljana")
	require.NoError(t, err)

	// The blank-named place is dropped during extraction cleanup.
	require.Len(t, pins, 1)
	assert.Equal(t, "Tivoli Park", pins[0].Name)
	assert.True(t, pins[0].Mapped())
}
