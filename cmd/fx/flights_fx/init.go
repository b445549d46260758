package flightsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/airports"
	"tripway/internal/api/controllers"
	"tripway/internal/infra"
	"tripway/internal/services"
	"tripway/pkg/cache"
	"tripway/pkg/serp"
)

var Module = fx.Provide(
	provideSerpClient,
	provideFlightService,
	controllers.NewFlightsController,
)

func provideSerpClient(cfg *infra.Config, logger *zap.Logger) *serp.Client {
	return serp.NewClient(cfg.SerpAPIKey, logger)
}

func provideFlightService(
	resolver *airports.Resolver,
	client *serp.Client,
	c cache.Cache,
	logger *zap.Logger,
) services.FlightServiceInterface {
	return services.NewFlightService(resolver, client, c, logger)
}
