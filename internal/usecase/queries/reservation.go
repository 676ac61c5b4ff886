package queries

import "context"

type ReservationQueries interface {
	ListForUser(ctx context.Context, userID int64) ([]*ReservationSummary, error)
}

// ReservationReadStore returns summaries ordered by start time.
type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*ReservationSummary, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) ListForUser(ctx context.Context, userID int64) ([]*ReservationSummary, error) {
	return q.readStore.ListByUser(ctx, userID)
}
