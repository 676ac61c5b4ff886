package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"parking-api/internal/domain/user"
	"parking-api/internal/infra"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/shared"
)

// translate maps repository error kinds onto domain errors. notFound is returned for
// missing rows; anything unclassified passes through untouched.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindVersionConflict):
		return errs.ErrVersionConflict
	default:
		return err
	}
}

// activeAccount resolves the caller. A token for a deleted user is treated as
// unauthenticated.
func activeAccount(ctx context.Context, reads shared.CommandReads, userID int64) (*user.User, error) {
	u, err := reads.UserAccount(ctx, userID)
	if err != nil {
		return nil, translate(err, errs.ErrUnauthenticated)
	}
	if !u.IsActive() {
		return nil, errs.ErrAccountInactive
	}
	return u, nil
}

func record(ctx context.Context, tx shared.Tx, aggregate, id, eventType string, payload any, at time.Time) error {
	return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
		Aggregate:   aggregate,
		AggregateID: id,
		Type:        eventType,
		Payload:     payload,
		OccurredAt:  at,
	})
}

// invalidate drops the cached billing views of a user once a change is committed.
// Failures are logged; the cache entries expire on their own.
func invalidate(ctx context.Context, cache shared.BillingCache, logger *slog.Logger, userID int64) {
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		logger.Warn("billing cache invalidation failed", "user_id", userID, "error", err)
	}
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
