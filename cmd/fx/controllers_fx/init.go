package controllers_fx

import (
	"go.uber.org/fx"

	"sherpa/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewMapController),
	fx.Provide(controllers.NewAssistantController),
	fx.Provide(controllers.NewTripController))
