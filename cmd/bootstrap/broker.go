package bootstrap

import (
	"context"
	"log/slog"

	"parking-api/internal/infra/broker"
	"parking-api/internal/pkg/config"
	"parking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Publisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("amqp not configured, outbox events are logged only")
		return broker.NewLogPublisher(logger), nil
	}

	publisher, err := broker.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
