package reservation

import (
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/errs"
)

var (
	ErrMissingTimes        = errs.NewKind(errs.KindValidation, "start and end time are required")
	ErrInvalidTimeSlot     = errs.NewKind(errs.KindValidation, "end time must be after start time")
	ErrMissingReference    = errs.NewKind(errs.KindValidation, "parking lot and vehicle are required")
	ErrReservationNotFound = errs.NewKind(errs.KindNotFound, "reservation not found")
	ErrNotOwner            = errs.NewKind(errs.KindAuthorization, "reservation belongs to another user")
	ErrAlreadyCancelled    = errs.NewKind(errs.KindState, "reservation is already cancelled")
	ErrAlreadyPaid         = errs.NewKind(errs.KindConflict, "reservation is already paid")
	ErrCancelledNotPayable = errs.NewKind(errs.KindState, "cancelled reservation cannot be paid")
	ErrInvalidStatus       = errs.NewKind(errs.KindValidation, "invalid reservation status")
)

// LotSpec is the part of a parking lot a reservation prices against.
type LotSpec struct {
	ID     int64
	Tariff pricing.Tariff
}

type Reservation struct {
	id        string
	userID    int64
	lotID     int64
	vehicleID int64
	timeSlot  TimeSlot
	cost      pricing.Money
	status    Status
	createdAt time.Time
	version   int32
}

// NewReservation prices the slot against the lot's current tariff. Reservations made
// by an authenticated user start confirmed.
func NewReservation(
	calc pricing.Calculator,
	lot LotSpec,
	userID, vehicleID int64,
	slot TimeSlot,
	now time.Time,
) (*Reservation, error) {
	if lot.ID <= 0 || vehicleID <= 0 {
		return nil, ErrMissingReference
	}
	quote := calc.CalculatePrice(lot.Tariff, slot.Start(), slot.End())
	return &Reservation{
		id:        NewID(),
		userID:    userID,
		lotID:     lot.ID,
		vehicleID: vehicleID,
		timeSlot:  slot,
		cost:      quote.Cost,
		status:    StatusConfirmed,
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id string,
	userID, lotID, vehicleID int64,
	timeSlot TimeSlot,
	cost pricing.Money,
	status Status,
	createdAt time.Time,
	version int32,
) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		lotID:     lotID,
		vehicleID: vehicleID,
		timeSlot:  timeSlot,
		cost:      cost,
		status:    status,
		createdAt: createdAt,
		version:   version,
	}
}

func (r *Reservation) EnsureOwnedBy(userID int64) error {
	if r.userID != userID {
		return ErrNotOwner
	}
	return nil
}

// Reschedule moves the reservation and overwrites the cost from the given lot. Status
// is left untouched, including paid and cancelled.
func (r *Reservation) Reschedule(calc pricing.Calculator, lot LotSpec, vehicleID int64, slot TimeSlot) error {
	if lot.ID <= 0 || vehicleID <= 0 {
		return ErrMissingReference
	}
	quote := calc.CalculatePrice(lot.Tariff, slot.Start(), slot.End())
	r.lotID = lot.ID
	r.vehicleID = vehicleID
	r.timeSlot = slot
	r.cost = quote.Cost
	return nil
}

func (r *Reservation) Cancel() error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) MarkPaid() error {
	if err := r.status.checkPayable(); err != nil {
		return err
	}
	r.status = StatusPaid
	return nil
}

func (r *Reservation) ID() string           { return r.id }
func (r *Reservation) UserID() int64        { return r.userID }
func (r *Reservation) LotID() int64         { return r.lotID }
func (r *Reservation) VehicleID() int64     { return r.vehicleID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Cost() pricing.Money  { return r.cost }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) Version() int32       { return r.version }
