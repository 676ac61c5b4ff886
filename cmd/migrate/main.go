package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"parking-api/internal/handler/middleware"
	"parking-api/internal/pkg/config"
	"parking-api/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies or inspects the versioned schema in MIGRATE_DIR against the
// configured database.
//
//	go run ./cmd/migrate            # apply pending migrations
//	go run ./cmd/migrate -status    # report applied and pending versions
func main() {
	status := flag.Bool("status", false, "report migration status instead of applying")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := atlasexec.NewClient(".", cfg.Migrate.AtlasBin)
	if err != nil {
		logger.Error("Failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	if *status {
		err = reportStatus(ctx, client, cfg, logger)
	} else {
		err = apply(ctx, client, cfg, logger)
	}
	if err != nil {
		logger.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, client *atlasexec.Client, cfg config.Config, logger *slog.Logger) error {
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.Dir,
	})
	if err != nil {
		return errs.Wrapf(err, "migrate apply %s", cfg.Migrate.Dir)
	}
	for _, f := range res.Applied {
		logger.Info("Applied migration", "version", f.Version, "description", f.Description)
	}
	logger.Info("Schema is up to date", "current", res.Target, "applied", len(res.Applied))
	return nil
}

func reportStatus(ctx context.Context, client *atlasexec.Client, cfg config.Config, logger *slog.Logger) error {
	res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: cfg.Migrate.Dir,
	})
	if err != nil {
		return errs.Wrapf(err, "migrate status %s", cfg.Migrate.Dir)
	}
	logger.Info("Migration status",
		"status", res.Status,
		"current", res.Current,
		"next", res.Next,
		"applied", len(res.Applied),
		"pending", len(res.Pending),
	)
	return nil
}
