package payment

import (
	"strings"
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingReservation = errs.NewKind(errs.KindValidation, "reservation id is required")
	ErrMissingMethod      = errs.NewKind(errs.KindValidation, "payment method is required")
	ErrInvalidAmount      = errs.NewKind(errs.KindValidation, "amount must be greater than zero")
	ErrInvalidStatus      = errs.NewKind(errs.KindValidation, "invalid payment status")
	ErrNotCancellable     = errs.NewKind(errs.KindState, "payment is already failed or refunded")
	ErrPaymentNotFound    = errs.NewKind(errs.KindNotFound, "payment not found")
	ErrIdempotencyReuse   = errs.NewKind(errs.KindConflict, "idempotency key was used with a different request")
)

type Payment struct {
	transactionID string
	reservationID string
	amount        pricing.Money
	tAmount       pricing.Money
	method        string
	status        Status
	createdAt     time.Time
	completedAt   time.Time
	hash          string
	initiator     string
	tDate         time.Time
	version       int32
}

// NewPayment settles instantly: the payment starts Completed with amount and tAmount
// both set to the reservation cost.
func NewPayment(reservationID, method string, cost pricing.Money, initiator string, now time.Time) (*Payment, error) {
	reservationID = strings.TrimSpace(reservationID)
	method = strings.TrimSpace(method)
	if reservationID == "" {
		return nil, ErrMissingReservation
	}
	if method == "" {
		return nil, ErrMissingMethod
	}
	return &Payment{
		transactionID: strings.ReplaceAll(uuid.NewString(), "-", ""),
		reservationID: reservationID,
		amount:        cost,
		tAmount:       cost,
		method:        method,
		status:        StatusCompleted,
		createdAt:     now,
		completedAt:   now,
		hash:          uuid.NewString(),
		initiator:     initiator,
		tDate:         now,
	}, nil
}

func ReconstructPayment(
	transactionID, reservationID string,
	amount, tAmount pricing.Money,
	method string,
	status Status,
	createdAt, completedAt time.Time,
	hash, initiator string,
	tDate time.Time,
	version int32,
) *Payment {
	return &Payment{
		transactionID: transactionID,
		reservationID: reservationID,
		amount:        amount,
		tAmount:       tAmount,
		method:        method,
		status:        status,
		createdAt:     createdAt,
		completedAt:   completedAt,
		hash:          hash,
		initiator:     initiator,
		tDate:         tDate,
		version:       version,
	}
}

// Cancel applies the admin cancel table: Pending fails, Completed is refunded.
func (p *Payment) Cancel(now time.Time) error {
	next, ok := cancelTransitions[p.status]
	if !ok {
		return ErrNotCancellable
	}
	p.status = next
	p.completedAt = now
	return nil
}

// Patch holds an admin amendment. Nil fields are left unchanged.
type Patch struct {
	Amount *pricing.Money
	Method *string
	Status *Status
}

// Amend validates every present field before applying any of them. It reports whether
// the payment changed; completedAt only moves when it did.
func (p *Payment) Amend(patch Patch, now time.Time) (bool, error) {
	if patch.Amount != nil && patch.Amount.Cents() <= 0 {
		return false, ErrInvalidAmount
	}
	var method string
	if patch.Method != nil {
		method = strings.TrimSpace(*patch.Method)
		if method == "" {
			return false, ErrMissingMethod
		}
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return false, ErrInvalidStatus
	}

	changed := false
	if patch.Amount != nil && *patch.Amount != p.amount {
		p.amount = *patch.Amount
		p.tAmount = *patch.Amount
		changed = true
	}
	if patch.Method != nil && method != p.method {
		p.method = method
		changed = true
	}
	if patch.Status != nil && *patch.Status != p.status {
		p.status = *patch.Status
		changed = true
	}
	if changed {
		p.completedAt = now
	}
	return changed, nil
}

func (p *Payment) TransactionID() string  { return p.transactionID }
func (p *Payment) ReservationID() string  { return p.reservationID }
func (p *Payment) Amount() pricing.Money  { return p.amount }
func (p *Payment) TAmount() pricing.Money { return p.tAmount }
func (p *Payment) Method() string         { return p.method }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) CreatedAt() time.Time   { return p.createdAt }
func (p *Payment) CompletedAt() time.Time { return p.completedAt }
func (p *Payment) Hash() string           { return p.hash }
func (p *Payment) Initiator() string      { return p.initiator }
func (p *Payment) TDate() time.Time       { return p.tDate }
func (p *Payment) Version() int32         { return p.version }
