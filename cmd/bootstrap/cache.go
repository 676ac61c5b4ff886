package bootstrap

import (
	"context"
	"log/slog"

	"parking-api/internal/infra/cache"
	"parking-api/internal/pkg/config"
	"parking-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewBillingCache,
	),
)

// NewBillingCache falls back to a no-op cache when REDIS_ADDR is empty. An unreachable
// Redis is logged and tolerated: the billing queries read through on cache errors.
func NewBillingCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.BillingCache {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, billing cache disabled")
		return cache.NopBillingCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisBillingCache(client, cfg.Redis.CacheTTL)
}
