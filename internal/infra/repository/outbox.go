package repository

import (
	"context"
	"encoding/json"
	"time"

	"parking-api/internal/infra"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertOutboxEventParams) error
	LockPendingOutboxEvents(ctx context.Context, db sqlstore.DBTX, limit int32) ([]sqlstore.OutboxEvent, error)
	MarkOutboxEventsSent(ctx context.Context, db sqlstore.DBTX, ids []int64, at pgtype.Timestamptz) (int64, error)
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{queries: queries}
}

func (r *OutboxRepository) Append(ctx context.Context, tx sqlstore.DBTX, event shared.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode outbox payload")
	}

	params := sqlstore.InsertOutboxEventParams{
		Aggregate:   event.Aggregate,
		AggregateID: event.AggregateID,
		EventType:   event.Type,
		Payload:     payload,
		CreatedAt:   pgconv.TimeToPgtype(event.OccurredAt),
	}
	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) LockPending(ctx context.Context, tx sqlstore.DBTX, limit int32) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.LockPendingOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending outbox events", err)
	}

	messages := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, shared.OutboxMessage{
			ID:          row.ID,
			Aggregate:   row.Aggregate,
			AggregateID: row.AggregateID,
			Type:        row.EventType,
			Payload:     row.Payload,
			CreatedAt:   row.CreatedAt.Time,
		})
	}
	return messages, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlstore.DBTX, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.queries.MarkOutboxEventsSent(ctx, tx, ids, pgconv.TimeToPgtype(at)); err != nil {
		return infra.WrapRepoErr("failed to mark outbox events sent", err)
	}
	return nil
}
