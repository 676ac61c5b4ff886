package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/payment"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
	"parking-api/internal/domain/user"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra/readstore"
	"parking-api/internal/infra/repository"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlstore.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlstore.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// RepeatableRead keeps one snapshot across all statements of fn
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlstore.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo        shared.UserRepository
	lotRepo         shared.LotRepository
	vehicleRepo     shared.VehicleRepository
	reservationRepo shared.ReservationRepository
	sessionRepo     shared.SessionRepository
	paymentRepo     shared.PaymentRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlstore.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository(t.uow.q)
	}
	return t.lotRepo
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicleRepo == nil {
		t.vehicleRepo = repository.NewVehicleRepository(t.uow.q)
	}
	return t.vehicleRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.uow.q)
	}
	return t.sessionRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.uow.q)
	}
	return t.paymentRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.uow.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads binds the read stores to one connection, so reads made through a
// transaction see its own uncommitted writes.
type commandReads struct {
	users        *readstore.UserReadStore
	lots         *readstore.LotReadStore
	vehicles     *readstore.VehicleReadStore
	reservations *readstore.ReservationReadStore
	sessions     *readstore.SessionReadStore
	payments     *readstore.PaymentReadStore
	idempotency  *readstore.IdempotencyReadStore
	dbtx         sqlstore.DBTX
}

func newCommandReads(q *sqlstore.Queries, dbtx sqlstore.DBTX) *commandReads {
	return &commandReads{
		users:        readstore.NewUserReadStore(q, dbtx),
		lots:         readstore.NewLotReadStore(q, dbtx),
		vehicles:     readstore.NewVehicleReadStore(q, dbtx),
		reservations: readstore.NewReservationReadStore(q, dbtx),
		sessions:     readstore.NewSessionReadStore(q, dbtx),
		payments:     readstore.NewPaymentReadStore(q, dbtx),
		idempotency:  readstore.NewIdempotencyReadStore(q),
		dbtx:         dbtx,
	}
}

func (r *commandReads) UserAccount(ctx context.Context, id int64) (*user.User, error) {
	return r.users.Account(ctx, id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.users.AccountByEmail(ctx, email)
}

func (r *commandReads) LotByID(ctx context.Context, id int64) (*lot.ParkingLot, error) {
	return r.lots.Lot(ctx, id)
}

func (r *commandReads) VehicleByID(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	return r.vehicles.Vehicle(ctx, id)
}

func (r *commandReads) VehicleByPlateAndOwner(ctx context.Context, plate string, ownerID int64) (*vehicle.Vehicle, error) {
	return r.vehicles.ByPlateAndOwner(ctx, plate, ownerID)
}

func (r *commandReads) ReservationByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	return r.reservations.Reservation(ctx, id)
}

func (r *commandReads) LatestOpenSessionByVehicle(ctx context.Context, vehicleID int64) (*session.ParkingSession, error) {
	return r.sessions.LatestOpenByVehicle(ctx, vehicleID)
}

func (r *commandReads) PaymentByTransaction(ctx context.Context, transactionID string) (*payment.Payment, error) {
	return r.payments.Payment(ctx, transactionID)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key string, userID int64) (*shared.IdempotencyRecord, error) {
	return r.idempotency.Get(ctx, r.dbtx, key, userID)
}
