package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parking-api/internal/infra/db"
	"parking-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB fails startup when postgres is unreachable within connectTimeout.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("Connected to database",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", cfg.DB.MaxConns,
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("Closing database pool",
				"acquired", stat.AcquiredConns(),
				"total_acquires", stat.AcquireCount(),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
