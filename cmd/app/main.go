package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	airportsfx "tripway/cmd/fx/airports_fx"
	cachefx "tripway/cmd/fx/cache_fx"
	dbfx "tripway/cmd/fx/db_fx"
	flightsfx "tripway/cmd/fx/flights_fx"
	hotelsfx "tripway/cmd/fx/hotels_fx"
	itineraryfx "tripway/cmd/fx/itinerary_fx"
	placesfx "tripway/cmd/fx/places_fx"
	"tripway/internal/api/controllers"
	"tripway/internal/infra"
	"tripway/pkg/middleware"
)

func main() {
	app := fx.New(
		dbfx.Module,
		cachefx.Module,
		placesfx.Module,
		airportsfx.Module,
		itineraryfx.Module,
		flightsfx.Module,
		hotelsfx.Module,

		fx.Provide(ProvideRouter),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	flightsController *controllers.FlightsController,
	hotelsController *controllers.HotelsController,
	airportsController *controllers.AirportsController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, flightsController, hotelsController, airportsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	flightsController *controllers.FlightsController,
	hotelsController *controllers.HotelsController,
	airportsController *controllers.AirportsController,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	itineraries := r.Group("/itineraries")
	itineraries.POST("", itineraryController.CreateItinerary)
	itineraries.POST("/summary", itineraryController.SummarizeItinerary)
	itineraries.GET("", middleware.JWTAuthMiddleware(), itineraryController.ListSavedItineraries)
	itineraries.GET("/:id", middleware.JWTAuthMiddleware(), itineraryController.GetSavedItinerary)
	itineraries.POST("/:id/save", middleware.JWTAuthMiddleware(), itineraryController.SaveItinerary)

	flights := r.Group("/flights")
	flights.POST("/search", flightsController.SearchFlights)

	hotels := r.Group("/hotels")
	hotels.POST("/search", hotelsController.SearchHotels)

	airports := r.Group("/airports")
	airports.GET("/nearest", airportsController.GetNearestAirports)
	airports.GET("/resolve", airportsController.ResolveCity)

	r.GET("/cities/suggest", airportsController.SuggestCities)
}
