package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sherpa/pkg/utils"
)

func TestGeocodeCache(t *testing.T) {
	cache, err := NewGeocodeCache(2)
	require.NoError(t, err)

	_, ok := cache.Get("Castle", "Ljubljana")
	assert.False(t, ok)

	cache.Add("Castle", "Ljubljana", utils.Coordinates{Lat: 46.05, Lng: 14.51})
	coords, ok := cache.Get("Castle", "Ljubljana")
	require.True(t, ok)
	assert.Equal(t, 46.05, coords.Lat)

	// The same name in another city is a distinct entry.
	_, ok = cache.Get("Castle", "Bled")
	assert.False(t, ok)
}

func TestGeocodeCacheEvicts(t *testing.T) {
	cache, err := NewGeocodeCache(2)
	require.NoError(t, err)

	cache.Add("A", "X", utils.Coordinates{Lat: 1})
	cache.Add("B", "X", utils.Coordinates{Lat: 2})
	cache.Add("C", "X", utils.Coordinates{Lat: 3})

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.Get("A", "X")
	assert.False(t, ok)
}
