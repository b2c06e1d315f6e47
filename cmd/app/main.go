package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sherpa/cmd/fx/assistant_fx"
	"sherpa/cmd/fx/controllers_fx"
	"sherpa/cmd/fx/db_fx"
	"sherpa/cmd/fx/export_fx"
	"sherpa/cmd/fx/itinerary_fx"
	"sherpa/cmd/fx/pins_fx"
	"sherpa/cmd/fx/trips_fx"
	"sherpa/internal/api/controllers"
	"sherpa/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		itinerary_fx.Module,
		pins_fx.Module,
		export_fx.Module,
		assistant_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	mapController *controllers.MapController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, mapController, assistantController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	mapController *controllers.MapController,
	assistantController *controllers.AssistantController,
	tripController *controllers.TripController) {

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/parse", itineraryController.ParseItinerary)
	itineraryGroup.POST("/tweak", itineraryController.TweakItinerary)

	mapGroup := r.Group("/map")
	mapGroup.POST("/pins", mapController.GetPins)
	mapGroup.POST("/export/kml", mapController.ExportKML)
	mapGroup.POST("/export/csv", mapController.ExportCSV)
	mapGroup.POST("/region", mapController.GetRegion)

	r.POST("/chat", assistantController.Chat)

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.SaveTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
	tripsGroup.DELETE("/:id", tripController.DeleteTrip)
}
