package shared

import (
	"context"
	"time"
)

type IdempotencyRecord struct {
	Key           string
	UserID        int64
	RequestHash   string
	TransactionID *string
	ExpiresAt     time.Time
}

// OutboxEvent is recorded in the same transaction as the change it describes.
type OutboxEvent struct {
	Aggregate   string
	AggregateID string
	Type        string
	Payload     any
	OccurredAt  time.Time
}

type OutboxMessage struct {
	ID          int64
	Aggregate   string
	AggregateID string
	Type        string
	Payload     []byte
	CreatedAt   time.Time
}

// Event types published through the outbox.
const (
	EventReservationCreated   = "reservation.created"
	EventReservationUpdated   = "reservation.updated"
	EventReservationCancelled = "reservation.cancelled"
	EventSessionStarted       = "session.started"
	EventSessionStopped       = "session.stopped"
	EventPaymentCreated       = "payment.created"
	EventPaymentCancelled     = "payment.cancelled"
	EventPaymentUpdated       = "payment.updated"
)

// BillingCache stores rendered billing views per user and generation. A miss is
// (false, nil). InvalidateUser moves the user to a new generation, so a view built
// under an older generation is never read again.
type BillingCache interface {
	Generation(ctx context.Context, userID int64) (int64, error)
	Get(ctx context.Context, userID, gen int64, view string, dst any) (bool, error)
	Set(ctx context.Context, userID, gen int64, view string, value any) error
	InvalidateUser(ctx context.Context, userID int64) error
}

// Publisher delivers relayed outbox messages to the broker.
type Publisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
