package airportsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/airports"
	"tripway/internal/api/controllers"
	"tripway/internal/infra"
	"tripway/internal/services"
)

var Module = fx.Provide(
	provideResolver,
	provideAirportService,
	controllers.NewAirportsController,
)

func provideResolver(cfg *infra.Config, logger *zap.Logger) (*airports.Resolver, error) {
	records, err := airports.Load(cfg.AirportsDataPath)
	if err != nil {
		return nil, err
	}
	return airports.NewResolver(records, logger), nil
}

func provideAirportService(resolver *airports.Resolver) services.AirportServiceInterface {
	return services.NewAirportService(resolver)
}
