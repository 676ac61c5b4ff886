//go:build unit || e2e

package builder

import (
	"time"

	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/pricing"
)

type PaymentBuilder struct {
	TransactionID string
	ReservationID string
	AmountCents   int64
	Method        string
	Status        payment.Status
	CreatedAt     time.Time
	Initiator     string
	Version       int32
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		TransactionID: "fedcba9876543210fedcba9876543210",
		ReservationID: "0123456789abcdef0123456789abcdef",
		AmountCents:   2000,
		Method:        "card",
		Status:        payment.StatusCompleted,
		CreatedAt:     time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		Initiator:     "test@example.com",
		Version:       1,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) WithStatus(status payment.Status) *PaymentBuilder {
	b.Status = status
	return b
}

func (b *PaymentBuilder) BuildDomain() *payment.Payment {
	amount := pricing.NewMoney(b.AmountCents)
	return payment.ReconstructPayment(
		b.TransactionID, b.ReservationID,
		amount, amount,
		b.Method,
		b.Status,
		b.CreatedAt, b.CreatedAt,
		"9b2f4c1e-5d7a-4e8b-a0c3-6f1d2e3b4a59", b.Initiator,
		b.CreatedAt,
		b.Version,
	)
}
