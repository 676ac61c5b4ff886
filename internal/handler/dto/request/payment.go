package request

import (
	"parking-api/internal/domain/pricing"
	"parking-api/internal/usecase/commands"
)

type CreatePaymentRequest struct {
	ReservationID string `json:"reservation_id" binding:"required,len=32,hexadecimal"`
	Method        string `json:"method" binding:"required,max=50"`
}

func (r *CreatePaymentRequest) ToCommand(idempotencyKey string) commands.CreatePaymentRequest {
	return commands.CreatePaymentRequest{
		ReservationID:  r.ReservationID,
		Method:         r.Method,
		IdempotencyKey: idempotencyKey,
	}
}

// AmendPaymentRequest is an admin correction; absent fields are kept.
type AmendPaymentRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0,lte=1000000000"`
	Method *string  `json:"method" binding:"omitempty,min=1,max=50"`
	Status *string  `json:"status" binding:"omitempty,oneof=Pending Completed Failed Refunded"`
}

func (r *AmendPaymentRequest) ToCommand() (commands.AmendPaymentRequest, error) {
	cmd := commands.AmendPaymentRequest{Method: r.Method, Status: r.Status}
	if r.Amount != nil {
		m, err := pricing.MoneyFromUnits(*r.Amount)
		if err != nil {
			return commands.AmendPaymentRequest{}, err
		}
		cents := m.Cents()
		cmd.AmountCents = &cents
	}
	return cmd, nil
}

type ListPaymentsQuery struct {
	Completed *bool `form:"completed"`
}
