package bootstrap

import (
	"log/slog"

	"parking-api/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// logConfigSummary records which optional backends are on. Secrets are never logged.
func logConfigSummary(cfg config.Config, logger *slog.Logger) {
	logger.Info("Configuration loaded",
		"port", cfg.Server.Port,
		"pricing_timezone", cfg.Pricing.Location().String(),
		"billing_cache", cfg.Redis.Addr != "",
		"event_broker", cfg.AMQP.URL != "",
		"scheduler", cfg.Scheduler.Enabled,
		"idempotency_ttl", cfg.Idempotency.TTL,
	)
}
