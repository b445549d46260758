package infra

import (
	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil when no address is configured; callers fall back to
// the in-memory cache.
func InitRedis(cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
