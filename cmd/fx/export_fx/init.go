package export_fx

import (
	"go.uber.org/fx"

	"sherpa/internal/services"
)

var Module = fx.Provide(
	provideExportService,
	provideMapViewService)

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideMapViewService() services.MapViewServiceInterface {
	return services.NewMapViewService()
}
