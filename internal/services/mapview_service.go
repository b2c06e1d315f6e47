package services

import (
	"sherpa/internal/models/response_models"
)

// regionPadding widens the bounding box by a tenth of its span on each
// side so map-fit leaves breathing room; minRegionPad keeps a single
// pin from producing a zero-area region.
const (
	regionPadding = 0.1
	minRegionPad  = 0.01
)

type MapViewServiceInterface interface {
	GroupByCategory(pins []response_models.Pin) map[response_models.Category][]response_models.Pin
	FilterByCategory(pins []response_models.Pin, category string) []response_models.Pin
	CategoryCounts(pins []response_models.Pin) map[response_models.Category]int
	BoundingRegion(pins []response_models.Pin) (response_models.Region, bool)
}

type MapViewService struct{}

func NewMapViewService() MapViewServiceInterface {
	return &MapViewService{}
}

func (s *MapViewService) GroupByCategory(pins []response_models.Pin) map[response_models.Category][]response_models.Pin {
	grouped := map[response_models.Category][]response_models.Pin{}
	for _, pin := range pins {
		grouped[pin.Category] = append(grouped[pin.Category], pin)
	}
	return grouped
}

// FilterByCategory returns the pins in the given category; "all" or an
// empty filter passes everything through. Unknown filter values match
// nothing rather than erroring.
func (s *MapViewService) FilterByCategory(pins []response_models.Pin, category string) []response_models.Pin {
	if category == "" || category == "all" {
		return pins
	}

	filtered := make([]response_models.Pin, 0, len(pins))
	for _, pin := range pins {
		if string(pin.Category) == category {
			filtered = append(filtered, pin)
		}
	}
	return filtered
}

func (s *MapViewService) CategoryCounts(pins []response_models.Pin) map[response_models.Category]int {
	counts := map[response_models.Category]int{}
	for _, pin := range pins {
		counts[pin.Category]++
	}
	return counts
}

// BoundingRegion computes the padded min/max box over mapped pins.
// ok is false when no pin carries coordinates; callers render the
// empty state instead of a map.
func (s *MapViewService) BoundingRegion(pins []response_models.Pin) (response_models.Region, bool) {
	var region response_models.Region
	found := false

	for _, pin := range pins {
		if !pin.Mapped() {
			continue
		}
		lat, lng := *pin.Lat, *pin.Lng
		if !found {
			region = response_models.Region{MinLat: lat, MaxLat: lat, MinLng: lng, MaxLng: lng}
			found = true
			continue
		}
		if lat < region.MinLat {
			region.MinLat = lat
		}
		if lat > region.MaxLat {
			region.MaxLat = lat
		}
		if lng < region.MinLng {
			region.MinLng = lng
		}
		if lng > region.MaxLng {
			region.MaxLng = lng
		}
	}

	if !found {
		return response_models.Region{}, false
	}

	padLat := (region.MaxLat - region.MinLat) * regionPadding
	if padLat < minRegionPad {
		padLat = minRegionPad
	}
	padLng := (region.MaxLng - region.MinLng) * regionPadding
	if padLng < minRegionPad {
		padLng = minRegionPad
	}

	region.MinLat -= padLat
	region.MaxLat += padLat
	region.MinLng -= padLng
	region.MaxLng += padLng
	return region, true
}
