package hotelsfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/api/controllers"
	"tripway/internal/services"
	"tripway/pkg/cache"
	"tripway/pkg/serp"
)

var Module = fx.Provide(
	provideHotelService,
	controllers.NewHotelsController,
)

func provideHotelService(client *serp.Client, c cache.Cache, logger *zap.Logger) services.HotelServiceInterface {
	return services.NewHotelService(client, c, logger)
}
