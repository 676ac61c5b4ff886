package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
)

const aggregateReservation = "reservation"

type ReservationRequest struct {
	ParkingLotID int64
	VehicleID    int64
	StartTime    time.Time
	EndTime      time.Time
}

type reservationEvent struct {
	ReservationID string    `json:"reservation_id"`
	UserID        int64     `json:"user_id"`
	ParkingLotID  int64     `json:"parking_lot_id"`
	VehicleID     int64     `json:"vehicle_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	CostCents     int64     `json:"cost_cents"`
	Status        string    `json:"status"`
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, userID int64, req ReservationRequest) (*reservation.Reservation, error)
	UpdateReservation(ctx context.Context, userID int64, id string, req ReservationRequest) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, userID int64, id string) error
}

type reservationCommandsImpl struct {
	uow    shared.UnitOfWork
	calc   pricing.Calculator
	cache  shared.BillingCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	calc pricing.Calculator,
	cache shared.BillingCache,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:    uow,
		calc:   calc,
		cache:  cache,
		clock:  clk,
		logger: logger,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, userID int64, req ReservationRequest) (*reservation.Reservation, error) {
	slot, err := validateReservationRequest(req)
	if err != nil {
		return nil, err
	}

	var created *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		spec, err := c.resolveTarget(ctx, tx.Reads(), userID, req)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		res, err := reservation.NewReservation(c.calc, spec, userID, req.VehicleID, slot, now)
		if err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		created = res
		return record(ctx, tx, aggregateReservation, res.ID(), shared.EventReservationCreated, toReservationEvent(res), now)
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, c.cache, c.logger, userID)
	return created, nil
}

// UpdateReservation reprices the reservation against the lot it now points at. The
// status is kept as is, so paid and cancelled reservations can still be moved.
func (c *reservationCommandsImpl) UpdateReservation(
	ctx context.Context,
	userID int64,
	id string,
	req ReservationRequest,
) (*reservation.Reservation, error) {
	var updated *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		if err := res.EnsureOwnedBy(userID); err != nil {
			return err
		}

		slot, err := validateReservationRequest(req)
		if err != nil {
			return err
		}
		spec, err := c.resolveTarget(ctx, tx.Reads(), userID, req)
		if err != nil {
			return err
		}
		if err := res.Reschedule(c.calc, spec, req.VehicleID, slot); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		updated = res
		return record(ctx, tx, aggregateReservation, res.ID(), shared.EventReservationUpdated, toReservationEvent(res), c.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	invalidate(ctx, c.cache, c.logger, userID)
	return updated, nil
}

// CancelReservation writes nothing when the reservation is already cancelled.
func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, userID int64, id string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		if err := res.EnsureOwnedBy(userID); err != nil {
			return err
		}
		if err := res.Cancel(); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return translate(err, reservation.ErrReservationNotFound)
		}
		return record(ctx, tx, aggregateReservation, res.ID(), shared.EventReservationCancelled, toReservationEvent(res), c.clock.Now())
	})
	if err != nil {
		return err
	}

	invalidate(ctx, c.cache, c.logger, userID)
	return nil
}

func validateReservationRequest(req ReservationRequest) (reservation.TimeSlot, error) {
	slot, err := reservation.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	if req.ParkingLotID <= 0 || req.VehicleID <= 0 {
		return reservation.TimeSlot{}, reservation.ErrMissingReference
	}
	return slot, nil
}

// resolveTarget loads the lot to price against and checks the vehicle belongs to the
// caller. A vehicle owned by someone else is reported as missing.
func (c *reservationCommandsImpl) resolveTarget(
	ctx context.Context,
	reads shared.CommandReads,
	userID int64,
	req ReservationRequest,
) (reservation.LotSpec, error) {
	l, err := reads.LotByID(ctx, req.ParkingLotID)
	if err != nil {
		return reservation.LotSpec{}, translate(err, lot.ErrLotNotFound)
	}
	v, err := reads.VehicleByID(ctx, req.VehicleID)
	if err != nil {
		return reservation.LotSpec{}, translate(err, vehicle.ErrVehicleNotFound)
	}
	if v.UserID() != userID {
		return reservation.LotSpec{}, vehicle.ErrVehicleNotFound
	}
	return reservation.LotSpec{ID: l.ID(), Tariff: l.Tariff()}, nil
}

func toReservationEvent(res *reservation.Reservation) reservationEvent {
	return reservationEvent{
		ReservationID: res.ID(),
		UserID:        res.UserID(),
		ParkingLotID:  res.LotID(),
		VehicleID:     res.VehicleID(),
		StartTime:     res.TimeSlot().Start(),
		EndTime:       res.TimeSlot().End(),
		CostCents:     res.Cost().Cents(),
		Status:        res.Status().String(),
	}
}
