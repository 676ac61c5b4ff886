package readstore

import (
	"context"

	"parking-api/internal/domain/payment"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/queries"
)

type PaymentReadQueries interface {
	FindPaymentByTransaction(ctx context.Context, db sqlstore.DBTX, transactionID string) (sqlstore.Payment, error)
	ListPaymentsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]sqlstore.Payment, error)
	ListPaymentsByUserAndCompletion(ctx context.Context, db sqlstore.DBTX, userID int64, completed bool) ([]sqlstore.Payment, error)
}

type PaymentReadStore struct {
	queries PaymentReadQueries
	db      sqlstore.DBTX
}

func NewPaymentReadStore(queries PaymentReadQueries, db sqlstore.DBTX) *PaymentReadStore {
	return &PaymentReadStore{queries: queries, db: db}
}

// ListByUser only sees payments whose reservation belongs to the user, so orphaned
// payments never show up. A nil completed lists every status.
func (r *PaymentReadStore) ListByUser(ctx context.Context, userID int64, completed *bool) ([]*queries.PaymentView, error) {
	var (
		rows []sqlstore.Payment
		err  error
	)
	if completed == nil {
		rows, err = r.queries.ListPaymentsByUser(ctx, r.db, userID)
	} else {
		rows, err = r.queries.ListPaymentsByUserAndCompletion(ctx, r.db, userID, *completed)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	views := make([]*queries.PaymentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPaymentView(row))
	}
	return views, nil
}

func (r *PaymentReadStore) Payment(ctx context.Context, transactionID string) (*payment.Payment, error) {
	row, err := r.queries.FindPaymentByTransaction(ctx, r.db, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return converter.PaymentFromRow(row), nil
}

func toPaymentView(row sqlstore.Payment) *queries.PaymentView {
	return &queries.PaymentView{
		TransactionID: row.TransactionID,
		ReservationID: row.ReservationID,
		AmountCents:   row.AmountCents,
		TAmountCents:  row.TAmountCents,
		Method:        row.Method,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		CompletedAt:   pgconv.TimeFromPgtype(row.CompletedAt),
		Hash:          row.Hash,
		Initiator:     row.Initiator,
		TDate:         pgconv.TimeFromPgtype(row.TDate),
	}
}
