package cachefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripway/internal/infra"
	"tripway/pkg/cache"
)

var Module = fx.Provide(
	provideCache,
)

func provideCache(cfg *infra.Config, logger *zap.Logger) cache.Cache {
	if client := infra.InitRedis(cfg); client != nil {
		return cache.NewRedisCache(client, logger)
	}
	return cache.NewMemoryCache()
}
