package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/shared"
)

const aggregatePayment = "payment"

var ErrIdempotencyInProgress = errs.NewKind(errs.KindConflict, "a request with this idempotency key is still in progress")

type CreatePaymentRequest struct {
	ReservationID  string
	Method         string
	IdempotencyKey string
}

type CreatePaymentResult struct {
	Payment    *payment.Payment
	IsReplayed bool
}

type AmendPaymentRequest struct {
	AmountCents *int64
	Method      *string
	Status      *string
}

type paymentEvent struct {
	TransactionID string `json:"transaction"`
	ReservationID string `json:"reservation_id"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	Initiator     string `json:"initiator"`
}

type PaymentCommands interface {
	CreatePayment(ctx context.Context, userID int64, req CreatePaymentRequest) (*CreatePaymentResult, error)
	CancelPayment(ctx context.Context, transactionID string) (*payment.Payment, error)
	AmendPayment(ctx context.Context, transactionID string, req AmendPaymentRequest) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	uow            shared.UnitOfWork
	cache          shared.BillingCache
	clock          clock.Clock
	idempotencyTTL time.Duration
	logger         *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	cache shared.BillingCache,
	clk clock.Clock,
	idempotencyTTL time.Duration,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:            uow,
		cache:          cache,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
		logger:         logger,
	}
}

// CreatePayment settles a reservation in full and marks it paid in the same
// transaction. With an idempotency key, a repeated request returns the stored payment.
func (c *paymentCommandsImpl) CreatePayment(ctx context.Context, userID int64, req CreatePaymentRequest) (*CreatePaymentResult, error) {
	req.ReservationID = strings.TrimSpace(req.ReservationID)
	req.Method = strings.TrimSpace(req.Method)
	if req.ReservationID == "" {
		return nil, payment.ErrMissingReservation
	}
	if req.Method == "" {
		return nil, payment.ErrMissingMethod
	}

	var result *CreatePaymentResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		if req.IdempotencyKey != "" {
			replayed, err := c.claimKey(ctx, tx, userID, req, now)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &CreatePaymentResult{Payment: replayed, IsReplayed: true}
				return nil
			}
		}

		p, err := c.settle(ctx, tx, userID, req, now)
		if err != nil {
			return err
		}
		if req.IdempotencyKey != "" {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), req.IdempotencyKey, userID, p.TransactionID()); err != nil {
				return err
			}
		}
		result = &CreatePaymentResult{Payment: p}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.IsReplayed {
		invalidate(ctx, c.cache, c.logger, userID)
	}
	return result, nil
}

// claimKey returns the stored payment when the key was already used for the same
// request, and nil when the key is fresh and now held by this transaction.
func (c *paymentCommandsImpl) claimKey(
	ctx context.Context,
	tx shared.Tx,
	userID int64,
	req CreatePaymentRequest,
	now time.Time,
) (*payment.Payment, error) {
	hash := requestHash(req.ReservationID, req.Method)
	claimed, err := tx.Idempotency().TryInsert(ctx, tx.DB(), req.IdempotencyKey, userID, hash, now, now.Add(c.idempotencyTTL))
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, req.IdempotencyKey, userID)
	if err != nil {
		return nil, err
	}
	if rec.RequestHash != hash {
		return nil, payment.ErrIdempotencyReuse
	}
	if rec.TransactionID == nil {
		return nil, ErrIdempotencyInProgress
	}
	p, err := tx.Reads().PaymentByTransaction(ctx, *rec.TransactionID)
	if err != nil {
		return nil, translate(err, payment.ErrPaymentNotFound)
	}
	return p, nil
}

func (c *paymentCommandsImpl) settle(
	ctx context.Context,
	tx shared.Tx,
	userID int64,
	req CreatePaymentRequest,
	now time.Time,
) (*payment.Payment, error) {
	payer, err := tx.Reads().UserAccount(ctx, userID)
	if err != nil {
		return nil, translate(err, errs.ErrUnauthenticated)
	}

	res, err := tx.Reads().ReservationByID(ctx, req.ReservationID)
	if err != nil {
		return nil, translate(err, reservation.ErrReservationNotFound)
	}
	if err := res.EnsureOwnedBy(userID); err != nil {
		return nil, err
	}
	if err := res.MarkPaid(); err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(res.ID(), req.Method, res.Cost(), payer.Email().Value(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Payments().Create(ctx, tx.DB(), p); err != nil {
		return nil, err
	}
	if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
		return nil, translate(err, reservation.ErrReservationNotFound)
	}

	if err := record(ctx, tx, aggregatePayment, p.TransactionID(), shared.EventPaymentCreated, toPaymentEvent(p), now); err != nil {
		return nil, err
	}
	if err := record(ctx, tx, aggregateReservation, res.ID(), shared.EventReservationUpdated, toReservationEvent(res), now); err != nil {
		return nil, err
	}
	return p, nil
}

// CancelPayment refunds a completed payment and fails a pending one.
func (c *paymentCommandsImpl) CancelPayment(ctx context.Context, transactionID string) (*payment.Payment, error) {
	var cancelled *payment.Payment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PaymentByTransaction(ctx, transactionID)
		if err != nil {
			return translate(err, payment.ErrPaymentNotFound)
		}
		now := c.clock.Now()
		if err := p.Cancel(now); err != nil {
			return err
		}
		if err := tx.Payments().Update(ctx, tx.DB(), p); err != nil {
			return translate(err, payment.ErrPaymentNotFound)
		}
		cancelled = p
		return record(ctx, tx, aggregatePayment, p.TransactionID(), shared.EventPaymentCancelled, toPaymentEvent(p), now)
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// AmendPayment applies a partial admin correction. Nothing is written when no field
// actually changes.
func (c *paymentCommandsImpl) AmendPayment(ctx context.Context, transactionID string, req AmendPaymentRequest) (*payment.Payment, error) {
	patch, err := toPatch(req)
	if err != nil {
		return nil, err
	}

	var amended *payment.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Reads().PaymentByTransaction(ctx, transactionID)
		if err != nil {
			return translate(err, payment.ErrPaymentNotFound)
		}
		now := c.clock.Now()
		changed, err := stored.Amend(patch, now)
		if err != nil {
			return err
		}
		amended = stored
		if !changed {
			return nil
		}
		if err := tx.Payments().Update(ctx, tx.DB(), stored); err != nil {
			return translate(err, payment.ErrPaymentNotFound)
		}
		return record(ctx, tx, aggregatePayment, stored.TransactionID(), shared.EventPaymentUpdated, toPaymentEvent(stored), now)
	})
	if err != nil {
		return nil, err
	}
	return amended, nil
}

func toPatch(req AmendPaymentRequest) (payment.Patch, error) {
	patch := payment.Patch{Method: req.Method}
	if req.AmountCents != nil {
		amount := pricing.NewMoney(*req.AmountCents)
		patch.Amount = &amount
	}
	if req.Status != nil {
		status, err := payment.NewStatus(*req.Status)
		if err != nil {
			return payment.Patch{}, err
		}
		patch.Status = &status
	}
	return patch, nil
}

func requestHash(reservationID, method string) string {
	sum := sha256.Sum256([]byte(reservationID + "|" + method))
	return hex.EncodeToString(sum[:])
}

func toPaymentEvent(p *payment.Payment) paymentEvent {
	return paymentEvent{
		TransactionID: p.TransactionID(),
		ReservationID: p.ReservationID(),
		AmountCents:   p.Amount().Cents(),
		Method:        p.Method(),
		Status:        p.Status().String(),
		Initiator:     p.Initiator(),
	}
}
