package pins_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"sherpa/internal/services"
	mem "sherpa/pkg/memcache"
	"sherpa/pkg/utils"
)

// geocodeCacheSize bounds the in-process coordinate cache. Coordinates
// are tiny; this comfortably covers a session of itineraries.
const geocodeCacheSize = 2048

var Module = fx.Provide(
	providePlaceExtractor,
	provideGeocoder,
	provideGeocodeCache,
	providePacer,
	provideExtractService,
	providePinService)

func providePlaceExtractor() utils.PlaceExtractorInterface {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	extractor, err := utils.NewGeminiPlaceExtractor(apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create place extractor: %v", err)
	}
	return extractor
}

func provideGeocoder() utils.GeocoderInterface {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	geocoder, err := utils.NewGoogleGeocoder(apiKey)
	if err != nil {
		log.Fatalf("Failed to create geocoder: %v", err)
	}
	return geocoder
}

func provideGeocodeCache() mem.GeocodeStore {
	cache, err := mem.NewGeocodeCache(geocodeCacheSize)
	if err != nil {
		log.Fatalf("Failed to create geocode cache: %v", err)
	}
	return cache
}

func providePacer() services.PacerInterface {
	return services.NewIntervalPacer(services.GeocodeInterval)
}

func provideExtractService(extractor utils.PlaceExtractorInterface) services.ExtractServiceInterface {
	return services.NewExtractService(extractor)
}

func providePinService(
	extractService services.ExtractServiceInterface,
	geocoder utils.GeocoderInterface,
	cache mem.GeocodeStore,
	pacer services.PacerInterface,
) services.PinServiceInterface {
	return services.NewPinService(extractService, geocoder, cache, pacer)
}
