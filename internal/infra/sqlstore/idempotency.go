package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// tryInsertIdempotencyKey claims the key when it is new or its previous claim expired.
// A live key held by another request yields no row.
const tryInsertIdempotencyKey = `INSERT INTO idempotency_keys (key, user_id, request_hash, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (key, user_id) DO UPDATE SET
    request_hash = EXCLUDED.request_hash,
    transaction_id = NULL,
    created_at = EXCLUDED.created_at,
    expires_at = EXCLUDED.expires_at
WHERE idempotency_keys.expires_at <= EXCLUDED.created_at
RETURNING key`

type TryInsertIdempotencyKeyParams struct {
	Key         string
	UserID      int64
	RequestHash string
	CreatedAt   pgtype.Timestamptz
	ExpiresAt   pgtype.Timestamptz
}

func (q *Queries) TryInsertIdempotencyKey(ctx context.Context, db DBTX, arg TryInsertIdempotencyKeyParams) (string, error) {
	var key string
	err := db.QueryRow(ctx, tryInsertIdempotencyKey,
		arg.Key, arg.UserID, arg.RequestHash, arg.CreatedAt, arg.ExpiresAt,
	).Scan(&key)
	return key, err
}

const getIdempotencyKey = `SELECT key, user_id, request_hash, transaction_id, created_at, expires_at
FROM idempotency_keys WHERE key = $1 AND user_id = $2`

func (q *Queries) GetIdempotencyKey(ctx context.Context, db DBTX, key string, userID int64) (IdempotencyKey, error) {
	var k IdempotencyKey
	err := db.QueryRow(ctx, getIdempotencyKey, key, userID).Scan(
		&k.Key, &k.UserID, &k.RequestHash, &k.TransactionID, &k.CreatedAt, &k.ExpiresAt,
	)
	return k, err
}

const completeIdempotencyKey = `UPDATE idempotency_keys SET transaction_id = $3 WHERE key = $1 AND user_id = $2`

func (q *Queries) CompleteIdempotencyKey(ctx context.Context, db DBTX, key string, userID int64, transactionID string) error {
	_, err := db.Exec(ctx, completeIdempotencyKey, key, userID, transactionID)
	return err
}

const deleteExpiredIdempotencyKeys = `DELETE FROM idempotency_keys WHERE expires_at <= $1`

func (q *Queries) DeleteExpiredIdempotencyKeys(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIdempotencyKeys, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
