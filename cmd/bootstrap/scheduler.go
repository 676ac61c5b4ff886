package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parking-api/internal/infra/scheduler"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/pkg/config"
	"parking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewJobs,
	),
	fx.Invoke(StartScheduler),
)

func NewJobs(uow shared.UnitOfWork, publisher shared.Publisher, clk clock.Clock, logger *slog.Logger) *scheduler.Jobs {
	return scheduler.NewJobs(uow, publisher, clk, logger)
}

func StartScheduler(lc fx.Lifecycle, cfg config.Config, jobs *scheduler.Jobs, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		logger.Info("scheduler disabled")
		return nil
	}

	s, err := scheduler.New(scheduler.Config{
		OutboxRelaySpec:   cfg.Scheduler.OutboxRelaySpec,
		OutboxBatchSize:   cfg.Scheduler.OutboxBatchSize,
		IdempotencyGCSpec: cfg.Scheduler.IdempotencyGCSpec,
		JobTimeout:        30 * time.Second,
	}, jobs, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
