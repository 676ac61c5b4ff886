package queries

import "context"

type PaymentQueries interface {
	// Query keeps Completed payments when completedOnly is set and every other status
	// otherwise.
	Query(ctx context.Context, userID int64, completedOnly bool) ([]*PaymentView, error)
	History(ctx context.Context, userID int64) ([]*PaymentView, error)
}

// PaymentReadStore joins payments to their reservations, so payments without a
// reservation never come back. A nil completed means no status filter.
type PaymentReadStore interface {
	ListByUser(ctx context.Context, userID int64, completed *bool) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	readStore PaymentReadStore
}

func NewPaymentQueries(readStore PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{readStore: readStore}
}

func (q *paymentQueriesImpl) Query(ctx context.Context, userID int64, completedOnly bool) ([]*PaymentView, error) {
	return q.readStore.ListByUser(ctx, userID, &completedOnly)
}

func (q *paymentQueriesImpl) History(ctx context.Context, userID int64) ([]*PaymentView, error) {
	return q.readStore.ListByUser(ctx, userID, nil)
}
