package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `INSERT INTO outbox_events (aggregate, aggregate_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

type InsertOutboxEventParams struct {
	Aggregate   string
	AggregateID string
	EventType   string
	Payload     []byte
	CreatedAt   pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent, arg.Aggregate, arg.AggregateID, arg.EventType, arg.Payload, arg.CreatedAt)
	return err
}

// SKIP LOCKED lets several relays drain the table without double-publishing.
const lockPendingOutboxEvents = `SELECT id, aggregate, aggregate_id, event_type, payload, created_at, sent_at
FROM outbox_events
WHERE sent_at IS NULL
ORDER BY id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) LockPendingOutboxEvents(ctx context.Context, db DBTX, limit int32) ([]OutboxEvent, error) {
	rows, err := db.Query(ctx, lockPendingOutboxEvents, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (OutboxEvent, error) {
		var e OutboxEvent
		err := row.Scan(&e.ID, &e.Aggregate, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt, &e.SentAt)
		return e, err
	})
}

const markOutboxEventsSent = `UPDATE outbox_events SET sent_at = $2 WHERE id = ANY($1::bigint[])`

func (q *Queries) MarkOutboxEventsSent(ctx context.Context, db DBTX, ids []int64, at pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, markOutboxEventsSent, ids, at)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
