package response

import (
	"time"

	"parking-api/internal/domain/payment"
	"parking-api/internal/usecase/queries"
)

type PaymentResponse struct {
	TransactionID string    `json:"transaction"`
	ReservationID string    `json:"reservation_id"`
	Amount        float64   `json:"amount"`
	TAmount       float64   `json:"t_amount"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	CompletedAt   time.Time `json:"completed_at"`
	Hash          string    `json:"hash"`
	Initiator     string    `json:"initiator"`
	TDate         time.Time `json:"t_date"`
}

func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		TransactionID: p.TransactionID(),
		ReservationID: p.ReservationID(),
		Amount:        p.Amount().Units(),
		TAmount:       p.TAmount().Units(),
		Method:        p.Method(),
		Status:        p.Status().String(),
		CreatedAt:     p.CreatedAt(),
		CompletedAt:   p.CompletedAt(),
		Hash:          p.Hash(),
		Initiator:     p.Initiator(),
		TDate:         p.TDate(),
	}
}

func FromPaymentViews(views []*queries.PaymentView) []*PaymentResponse {
	res := make([]*PaymentResponse, len(views))
	for i, v := range views {
		res[i] = &PaymentResponse{
			TransactionID: v.TransactionID,
			ReservationID: v.ReservationID,
			Amount:        units(v.AmountCents),
			TAmount:       units(v.TAmountCents),
			Method:        v.Method,
			Status:        v.Status,
			CreatedAt:     v.CreatedAt,
			CompletedAt:   v.CompletedAt,
			Hash:          v.Hash,
			Initiator:     v.Initiator,
			TDate:         v.TDate,
		}
	}
	return res
}
