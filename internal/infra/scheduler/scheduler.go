package scheduler

import (
	"context"
	"log/slog"
	"time"

	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

type Config struct {
	OutboxRelaySpec   string
	OutboxBatchSize   int32
	IdempotencyGCSpec string
	JobTimeout        time.Duration
}

// Scheduler runs the background jobs: relaying outbox events to the broker and purging
// expired idempotency keys. A job that is still running when its next tick fires is
// skipped.
type Scheduler struct {
	cron   *cron.Cron
	jobs   *Jobs
	cfg    Config
	logger *slog.Logger
}

func New(cfg Config, jobs *Jobs, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{logger}),
		cron.SkipIfStillRunning(cronLogger{logger}),
	))
	s := &Scheduler{cron: c, jobs: jobs, cfg: cfg, logger: logger}

	if _, err := c.AddFunc(cfg.OutboxRelaySpec, s.wrap("outbox_relay", func(ctx context.Context) error {
		_, err := jobs.RelayOutbox(ctx, cfg.OutboxBatchSize)
		return err
	})); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(cfg.IdempotencyGCSpec, s.wrap("idempotency_gc", func(ctx context.Context) error {
		_, err := jobs.PurgeIdempotencyKeys(ctx)
		return err
	})); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "entries", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wrap(name string, job func(ctx context.Context) error) func() {
	return func() {
		timeout := s.cfg.JobTimeout
		if timeout <= 0 {
			timeout = time.Minute
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		s.logger.Debug("scheduled job finished", "job", name, "duration_ms", time.Since(start).Milliseconds())
	}
}

// Jobs holds the job bodies so they can be run directly in tests.
type Jobs struct {
	uow       shared.UnitOfWork
	publisher shared.Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewJobs(uow shared.UnitOfWork, publisher shared.Publisher, clk clock.Clock, logger *slog.Logger) *Jobs {
	return &Jobs{uow: uow, publisher: publisher, clock: clk, logger: logger}
}

// RelayOutbox publishes up to limit pending events in id order. Publishing stops at the
// first failure; events already handed to the broker are still marked sent, the rest
// are retried on the next run.
func (j *Jobs) RelayOutbox(ctx context.Context, limit int32) (int, error) {
	relayed := 0
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		relayed = 0
		msgs, err := tx.Outbox().LockPending(ctx, tx.DB(), limit)
		if err != nil {
			return err
		}

		sent := make([]int64, 0, len(msgs))
		for _, msg := range msgs {
			if perr := j.publisher.Publish(ctx, msg); perr != nil {
				j.logger.Warn("outbox publish failed", "id", msg.ID, "type", msg.Type, "error", perr)
				break
			}
			sent = append(sent, msg.ID)
		}

		if err := tx.Outbox().MarkSent(ctx, tx.DB(), sent, j.clock.Now()); err != nil {
			return err
		}
		relayed = len(sent)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if relayed > 0 {
		j.logger.Info("outbox relayed", "count", relayed)
	}
	return relayed, nil
}

func (j *Jobs) PurgeIdempotencyKeys(ctx context.Context) (int64, error) {
	var purged int64
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), j.clock.Now())
		purged = n
		return err
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		j.logger.Info("expired idempotency keys purged", "count", purged)
	}
	return purged, nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
