package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/session"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
)

const aggregateSession = "parking_session"

type sessionEvent struct {
	SessionID    int64      `json:"session_id"`
	UserID       int64      `json:"user_id"`
	VehicleID    int64      `json:"vehicle_id"`
	LicensePlate string     `json:"license_plate"`
	ParkingLotID int64      `json:"parking_lot_id"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	CostCents    *int64     `json:"cost_cents,omitempty"`
	Status       string     `json:"status"`
}

// StopResult carries the stopped session and the quote it was billed with.
type StopResult struct {
	Session *session.ParkingSession
	Quote   pricing.Quote
}

type SessionCommands interface {
	StartSession(ctx context.Context, userID, lotID int64, plate string) (*session.ParkingSession, error)
	StopSession(ctx context.Context, userID, lotID int64, plate string) (*StopResult, error)
}

type sessionCommandsImpl struct {
	uow    shared.UnitOfWork
	calc   pricing.Calculator
	cache  shared.BillingCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewSessionCommands(
	uow shared.UnitOfWork,
	calc pricing.Calculator,
	cache shared.BillingCache,
	clk clock.Clock,
	logger *slog.Logger,
) SessionCommands {
	return &sessionCommandsImpl{
		uow:    uow,
		calc:   calc,
		cache:  cache,
		clock:  clk,
		logger: logger,
	}
}

func (c *sessionCommandsImpl) StartSession(ctx context.Context, userID, lotID int64, plate string) (*session.ParkingSession, error) {
	var started *session.ParkingSession
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, v, err := resolveParking(ctx, tx.Reads(), userID, lotID, plate)
		if err != nil {
			return err
		}

		_, err = tx.Reads().LatestOpenSessionByVehicle(ctx, v.ID())
		switch {
		case err == nil:
			return session.ErrSessionAlreadyActive
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		now := c.clock.Now()
		s := session.Open(userID, v.ID(), v.LicensePlate(), l.ID(), now)
		id, err := tx.Sessions().Create(ctx, tx.DB(), s)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return session.ErrSessionAlreadyActive
			}
			return err
		}
		started = session.ReconstructSession(id, s.UserID(), s.VehicleID(), s.LicensePlate(), s.LotID(),
			s.Start(), nil, nil, s.Status(), 1)
		return record(ctx, tx, aggregateSession, idString(id), shared.EventSessionStarted, toSessionEvent(started), now)
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, c.cache, c.logger, userID)
	return started, nil
}

// StopSession closes the most recent open session of the vehicle and bills it with
// the tariff of the lot named in the request.
func (c *sessionCommandsImpl) StopSession(ctx context.Context, userID, lotID int64, plate string) (*StopResult, error) {
	var result *StopResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, v, err := resolveParking(ctx, tx.Reads(), userID, lotID, plate)
		if err != nil {
			return err
		}

		s, err := tx.Reads().LatestOpenSessionByVehicle(ctx, v.ID())
		if err != nil {
			return translate(err, session.ErrNoActiveSession)
		}

		now := c.clock.Now()
		quote, err := s.Stop(c.calc, l.Tariff(), now)
		if err != nil {
			return err
		}
		if err := tx.Sessions().Stop(ctx, tx.DB(), s); err != nil {
			return translate(err, session.ErrNoActiveSession)
		}
		result = &StopResult{Session: s, Quote: quote}
		return record(ctx, tx, aggregateSession, idString(s.ID()), shared.EventSessionStopped, toSessionEvent(s), now)
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, c.cache, c.logger, userID)
	return result, nil
}

// resolveParking runs the checks shared by start and stop: an active account, an
// existing lot and a vehicle with that plate owned by the caller.
func resolveParking(
	ctx context.Context,
	reads shared.CommandReads,
	userID, lotID int64,
	plate string,
) (*lot.ParkingLot, *vehicle.Vehicle, error) {
	if _, err := activeAccount(ctx, reads, userID); err != nil {
		return nil, nil, err
	}
	l, err := reads.LotByID(ctx, lotID)
	if err != nil {
		return nil, nil, translate(err, lot.ErrLotNotFound)
	}
	v, err := reads.VehicleByPlateAndOwner(ctx, vehicle.NormalizePlate(plate), userID)
	if err != nil {
		return nil, nil, translate(err, vehicle.ErrVehicleNotFound)
	}
	return l, v, nil
}

func toSessionEvent(s *session.ParkingSession) sessionEvent {
	ev := sessionEvent{
		SessionID:    s.ID(),
		UserID:       s.UserID(),
		VehicleID:    s.VehicleID(),
		LicensePlate: s.LicensePlate(),
		ParkingLotID: s.LotID(),
		StartTime:    s.Start(),
		EndTime:      s.End(),
		Status:       s.Status().String(),
	}
	if s.Cost() != nil {
		cents := s.Cost().Cents()
		ev.CostCents = &cents
	}
	return ev
}
