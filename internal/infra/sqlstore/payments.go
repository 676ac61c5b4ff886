package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `p.transaction_id, p.reservation_id, p.amount_cents, p.t_amount_cents, p.method,
       p.status, p.created_at, p.completed_at, p.hash, p.initiator, p.t_date, p.version`

func scanPayment(row interface{ Scan(...any) error }) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.TransactionID, &p.ReservationID, &p.AmountCents, &p.TAmountCents, &p.Method,
		&p.Status, &p.CreatedAt, &p.CompletedAt, &p.Hash, &p.Initiator, &p.TDate, &p.Version,
	)
	return p, err
}

const createPayment = `INSERT INTO payments (
    transaction_id, reservation_id, amount_cents, t_amount_cents, method, status,
    created_at, completed_at, hash, initiator, t_date, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1)`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg Payment) error {
	_, err := db.Exec(ctx, createPayment,
		arg.TransactionID, arg.ReservationID, arg.AmountCents, arg.TAmountCents, arg.Method, arg.Status,
		arg.CreatedAt, arg.CompletedAt, arg.Hash, arg.Initiator, arg.TDate,
	)
	return err
}

const updatePayment = `UPDATE payments SET
    amount_cents = $3, t_amount_cents = $4, method = $5, status = $6, completed_at = $7,
    version = version + 1
WHERE transaction_id = $1 AND version = $2`

type UpdatePaymentParams struct {
	TransactionID string
	Version       int32
	AmountCents   int64
	TAmountCents  int64
	Method        string
	Status        string
	CompletedAt   pgtype.Timestamptz
}

func (q *Queries) UpdatePayment(ctx context.Context, db DBTX, arg UpdatePaymentParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePayment,
		arg.TransactionID, arg.Version, arg.AmountCents, arg.TAmountCents, arg.Method, arg.Status, arg.CompletedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findPaymentByTransaction = `SELECT ` + paymentColumns + ` FROM payments p WHERE p.transaction_id = $1`

func (q *Queries) FindPaymentByTransaction(ctx context.Context, db DBTX, transactionID string) (Payment, error) {
	return scanPayment(db.QueryRow(ctx, findPaymentByTransaction, transactionID))
}

// The inner join drops payments whose reservation no longer exists.
const listPaymentsByUser = `SELECT ` + paymentColumns + `
FROM payments p
JOIN reservations r ON r.id = p.reservation_id
WHERE r.user_id = $1
ORDER BY p.created_at DESC, p.transaction_id`

func (q *Queries) ListPaymentsByUser(ctx context.Context, db DBTX, userID int64) ([]Payment, error) {
	rows, err := db.Query(ctx, listPaymentsByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Payment, error) {
		return scanPayment(row)
	})
}

const listPaymentsByUserAndCompletion = `SELECT ` + paymentColumns + `
FROM payments p
JOIN reservations r ON r.id = p.reservation_id
WHERE r.user_id = $1 AND (p.status = 'Completed') = $2
ORDER BY p.created_at DESC, p.transaction_id`

func (q *Queries) ListPaymentsByUserAndCompletion(ctx context.Context, db DBTX, userID int64, completed bool) ([]Payment, error) {
	rows, err := db.Query(ctx, listPaymentsByUserAndCompletion, userID, completed)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Payment, error) {
		return scanPayment(row)
	})
}
