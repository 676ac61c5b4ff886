package session

import (
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/errs"
)

var (
	ErrNoActiveSession      = errs.NewKind(errs.KindNotFound, "no active session for this vehicle")
	ErrSessionAlreadyActive = errs.NewKind(errs.KindConflict, "vehicle already has an active session")
	ErrSessionStopped       = errs.NewKind(errs.KindState, "session is already stopped")
)

// ParkingSession is a walk-up stay. Cost stays nil until Stop.
type ParkingSession struct {
	id           int64
	userID       int64
	vehicleID    int64
	licensePlate string
	lotID        int64
	start        time.Time
	end          *time.Time
	cost         *pricing.Money
	status       Status
	version      int32
}

func Open(userID, vehicleID int64, licensePlate string, lotID int64, now time.Time) *ParkingSession {
	return &ParkingSession{
		userID:       userID,
		vehicleID:    vehicleID,
		licensePlate: licensePlate,
		lotID:        lotID,
		start:        now,
		status:       StatusActive,
	}
}

func ReconstructSession(
	id, userID, vehicleID int64,
	licensePlate string,
	lotID int64,
	start time.Time,
	end *time.Time,
	cost *pricing.Money,
	status Status,
	version int32,
) *ParkingSession {
	return &ParkingSession{
		id:           id,
		userID:       userID,
		vehicleID:    vehicleID,
		licensePlate: licensePlate,
		lotID:        lotID,
		start:        start,
		end:          end,
		cost:         cost,
		status:       status,
		version:      version,
	}
}

// Stop closes the session at now and prices it once against tariff.
func (s *ParkingSession) Stop(calc pricing.Calculator, tariff pricing.Tariff, now time.Time) (pricing.Quote, error) {
	if s.end != nil {
		return pricing.Quote{}, ErrSessionStopped
	}
	quote := calc.CalculatePrice(tariff, s.start, now)
	end := now
	cost := quote.Cost
	s.end = &end
	s.cost = &cost
	s.status = StatusCompleted
	return quote, nil
}

func (s *ParkingSession) IsOpen() bool {
	return s.end == nil
}

func (s *ParkingSession) ID() int64            { return s.id }
func (s *ParkingSession) UserID() int64        { return s.userID }
func (s *ParkingSession) VehicleID() int64     { return s.vehicleID }
func (s *ParkingSession) LicensePlate() string { return s.licensePlate }
func (s *ParkingSession) LotID() int64         { return s.lotID }
func (s *ParkingSession) Start() time.Time     { return s.start }
func (s *ParkingSession) End() *time.Time      { return s.end }
func (s *ParkingSession) Cost() *pricing.Money { return s.cost }
func (s *ParkingSession) Status() Status       { return s.status }
func (s *ParkingSession) Version() int32       { return s.version }
