package repository

import (
	"context"

	"parking-api/internal/domain/payment"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.Payment) error
	UpdatePayment(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdatePaymentParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
}

func NewPaymentRepository(queries PaymentWriteQueries) *PaymentRepository {
	return &PaymentRepository{queries: queries}
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlstore.DBTX, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, tx, converter.PaymentToRow(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, tx sqlstore.DBTX, p *payment.Payment) error {
	affected, err := r.queries.UpdatePayment(ctx, tx, converter.PaymentToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment version changed", nil, infra.KindVersionConflict)
	}
	return nil
}
