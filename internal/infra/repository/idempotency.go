package repository

import (
	"context"
	"time"

	"parking-api/internal/infra"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlstore.DBTX, arg sqlstore.TryInsertIdempotencyKeyParams) (string, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlstore.DBTX, key string, userID int64, transactionID string) error
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlstore.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlstore.DBTX, key string, userID int64, requestHash string, now, expiresAt time.Time) (bool, error) {
	params := sqlstore.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		CreatedAt:   pgconv.TimeToPgtype(now),
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	}

	_, err := r.queries.TryInsertIdempotencyKey(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return true, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlstore.DBTX, key string, userID int64, transactionID string) error {
	err := r.queries.CompleteIdempotencyKey(ctx, tx, key, userID, transactionID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, db sqlstore.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return count, nil
}
