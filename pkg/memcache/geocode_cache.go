package mem

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"sherpa/pkg/utils"
)

type geoKey struct {
	Name string
	City string
}

// GeocodeStore caches successful geocode results keyed by the exact
// (name, city) query pair. Only resolved coordinates are stored;
// misses are retried on the next request. The pin resolver is the only
// writer and issues lookups strictly sequentially, so the store sees
// no concurrent writes in practice; the LRU itself is still
// goroutine-safe for reuse across requests.
type GeocodeStore interface {
	Get(name, city string) (utils.Coordinates, bool)
	Add(name, city string, coords utils.Coordinates)
	Len() int
}

type GeocodeCache struct {
	lru *lru.Cache[geoKey, utils.Coordinates]
}

// NewGeocodeCache builds a bounded cache. The size cap keeps a
// long-running process from accumulating every place name ever
// resolved; within one session it behaves like the unbounded map it
// replaces.
func NewGeocodeCache(size int) (*GeocodeCache, error) {
	c, err := lru.New[geoKey, utils.Coordinates](size)
	if err != nil {
		return nil, err
	}
	return &GeocodeCache{lru: c}, nil
}

func (g *GeocodeCache) Get(name, city string) (utils.Coordinates, bool) {
	return g.lru.Get(geoKey{Name: name, City: city})
}

func (g *GeocodeCache) Add(name, city string, coords utils.Coordinates) {
	g.lru.Add(geoKey{Name: name, City: city}, coords)
}

func (g *GeocodeCache) Len() int {
	return g.lru.Len()
}
