package queries

import (
	"context"
	"log/slog"

	"gopkg.in/guregu/null.v4"

	"parking-api/internal/domain/billing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
)

const (
	BillingViewUpcoming = "upcoming"
	BillingViewHistory  = "history"
)

type BillingQueries interface {
	Upcoming(ctx context.Context, userID int64) ([]*BillingItemView, error)
	History(ctx context.Context, userID int64) ([]*BillingItemView, error)
	PaymentHistory(ctx context.Context, userID int64) ([]*PaymentView, error)
}

// BillingReadStore loads every reservation and session of a user as domain entities so
// the aggregation rules stay in the domain package.
type BillingReadStore interface {
	ReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*reservation.Reservation, error)
	SessionsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*session.ParkingSession, error)
}

type billingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore BillingReadStore
	payments  PaymentReadStore
	cache     shared.BillingCache
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBillingQueries(
	uow shared.UnitOfWork,
	readStore BillingReadStore,
	payments PaymentReadStore,
	cache shared.BillingCache,
	clk clock.Clock,
	logger *slog.Logger,
) BillingQueries {
	return &billingQueriesImpl{
		uow:       uow,
		readStore: readStore,
		payments:  payments,
		cache:     cache,
		clock:     clk,
		logger:    logger,
	}
}

func (q *billingQueriesImpl) Upcoming(ctx context.Context, userID int64) ([]*BillingItemView, error) {
	return q.cached(ctx, userID, BillingViewUpcoming, func(
		reservations []*reservation.Reservation,
		sessions []*session.ParkingSession,
	) []billing.Item {
		return billing.Upcoming(reservations, sessions)
	})
}

func (q *billingQueriesImpl) History(ctx context.Context, userID int64) ([]*BillingItemView, error) {
	return q.cached(ctx, userID, BillingViewHistory, func(
		reservations []*reservation.Reservation,
		sessions []*session.ParkingSession,
	) []billing.Item {
		return billing.History(reservations, sessions, q.clock.Now())
	})
}

func (q *billingQueriesImpl) PaymentHistory(ctx context.Context, userID int64) ([]*PaymentView, error) {
	return q.payments.ListByUser(ctx, userID, nil)
}

// cached serves a view from the cache when present. Cache failures are logged and the
// view is rebuilt from the database. The generation is read before the database so a
// view built from pre-invalidation rows is stored under a generation nobody reads.
func (q *billingQueriesImpl) cached(
	ctx context.Context,
	userID int64,
	view string,
	build func([]*reservation.Reservation, []*session.ParkingSession) []billing.Item,
) ([]*BillingItemView, error) {
	gen, err := q.cache.Generation(ctx, userID)
	useCache := err == nil
	if err != nil {
		q.logger.Warn("billing cache generation read failed", "user_id", userID, "error", err)
	}

	var items []*BillingItemView
	if useCache {
		hit, err := q.cache.Get(ctx, userID, gen, view, &items)
		if err != nil {
			q.logger.Warn("billing cache read failed", "user_id", userID, "view", view, "error", err)
		} else if hit {
			return items, nil
		}
	}

	var (
		reservations []*reservation.Reservation
		sessions     []*session.ParkingSession
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlstore.DBTX) error {
		var err error
		if reservations, err = q.readStore.ReservationsByUser(ctx, db, userID); err != nil {
			return err
		}
		sessions, err = q.readStore.SessionsByUser(ctx, db, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	items = toBillingViews(build(reservations, sessions))
	if useCache {
		if err := q.cache.Set(ctx, userID, gen, view, items); err != nil {
			q.logger.Warn("billing cache write failed", "user_id", userID, "view", view, "error", err)
		}
	}
	return items, nil
}

func toBillingViews(items []billing.Item) []*BillingItemView {
	views := make([]*BillingItemView, 0, len(items))
	for _, item := range items {
		v := &BillingItemView{
			ID:          item.ID,
			Kind:        string(item.Kind),
			Date:        item.Date,
			Status:      item.Status,
			Description: null.NewString(item.Description, item.Description != ""),
		}
		if item.Amount != nil {
			v.AmountCents = null.IntFrom(item.Amount.Cents())
		}
		views = append(views, v)
	}
	return views
}
