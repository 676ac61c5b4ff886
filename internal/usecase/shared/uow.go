package shared

import (
	"context"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
	"parking-api/internal/domain/user"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra/sqlstore"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot shared by every query run through db
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Lots() LotRepository
	Vehicles() VehicleRepository
	Reservations() ReservationRepository
	Sessions() SessionRepository
	Payments() PaymentRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlstore.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows surface as
// infra.KindNotFound repository errors.
type CommandReads interface {
	UserAccount(ctx context.Context, id int64) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	LotByID(ctx context.Context, id int64) (*lot.ParkingLot, error)
	VehicleByID(ctx context.Context, id int64) (*vehicle.Vehicle, error)
	VehicleByPlateAndOwner(ctx context.Context, plate string, ownerID int64) (*vehicle.Vehicle, error)
	ReservationByID(ctx context.Context, id string) (*reservation.Reservation, error)
	LatestOpenSessionByVehicle(ctx context.Context, vehicleID int64) (*session.ParkingSession, error)
	PaymentByTransaction(ctx context.Context, transactionID string) (*payment.Payment, error)
	IdempotencyByKey(ctx context.Context, key string, userID int64) (*IdempotencyRecord, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, u *user.User) (int64, error)
	UpdateLastLogin(ctx context.Context, tx sqlstore.DBTX, userID int64, at time.Time) error
}

type LotRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, l *lot.ParkingLot) (int64, error)
	Update(ctx context.Context, tx sqlstore.DBTX, l *lot.ParkingLot) error
}

type VehicleRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, v *vehicle.Vehicle) (int64, error)
}

// Update methods compare-and-swap on the aggregate's version and report
// infra.KindVersionConflict when the row moved underneath.
type ReservationRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, r *reservation.Reservation) error
	Update(ctx context.Context, tx sqlstore.DBTX, r *reservation.Reservation) error
}

type SessionRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, s *session.ParkingSession) (int64, error)
	Stop(ctx context.Context, tx sqlstore.DBTX, s *session.ParkingSession) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx sqlstore.DBTX, p *payment.Payment) error
	Update(ctx context.Context, tx sqlstore.DBTX, p *payment.Payment) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when a live record already holds the key.
	TryInsert(ctx context.Context, tx sqlstore.DBTX, key string, userID int64, requestHash string, now, expiresAt time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlstore.DBTX, key string, userID int64, transactionID string) error
	DeleteExpired(ctx context.Context, db sqlstore.DBTX, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlstore.DBTX, event OutboxEvent) error
	LockPending(ctx context.Context, tx sqlstore.DBTX, limit int32) ([]OutboxMessage, error)
	MarkSent(ctx context.Context, tx sqlstore.DBTX, ids []int64, at time.Time) error
}
