package converter

import (
	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
)

func PaymentToRow(p *payment.Payment) sqlstore.Payment {
	return sqlstore.Payment{
		TransactionID: p.TransactionID(),
		ReservationID: p.ReservationID(),
		AmountCents:   p.Amount().Cents(),
		TAmountCents:  p.TAmount().Cents(),
		Method:        p.Method(),
		Status:        p.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		CompletedAt:   pgconv.TimeToPgtype(p.CompletedAt()),
		Hash:          p.Hash(),
		Initiator:     p.Initiator(),
		TDate:         pgconv.TimeToPgtype(p.TDate()),
		Version:       p.Version(),
	}
}

func PaymentToUpdateParams(p *payment.Payment) sqlstore.UpdatePaymentParams {
	return sqlstore.UpdatePaymentParams{
		TransactionID: p.TransactionID(),
		Version:       p.Version(),
		AmountCents:   p.Amount().Cents(),
		TAmountCents:  p.TAmount().Cents(),
		Method:        p.Method(),
		Status:        p.Status().String(),
		CompletedAt:   pgconv.TimeToPgtype(p.CompletedAt()),
	}
}

func PaymentFromRow(row sqlstore.Payment) *payment.Payment {
	return payment.ReconstructPayment(
		row.TransactionID, row.ReservationID,
		pricing.NewMoney(row.AmountCents), pricing.NewMoney(row.TAmountCents),
		row.Method,
		payment.Status(row.Status),
		row.CreatedAt.Time, row.CompletedAt.Time,
		row.Hash, row.Initiator,
		row.TDate.Time,
		row.Version,
	)
}
