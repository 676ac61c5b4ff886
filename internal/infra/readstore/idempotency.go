package readstore

import (
	"context"

	"parking-api/internal/infra"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/shared"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlstore.DBTX, key string, userID int64) (sqlstore.IdempotencyKey, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlstore.DBTX, key string, userID int64) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, key, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:           row.Key,
		UserID:        row.UserID,
		RequestHash:   row.RequestHash,
		TransactionID: pgconv.StringPtrFromPgtype(row.TransactionID),
		ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}
