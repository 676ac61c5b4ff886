package lot

import (
	"strings"
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/errs"
)

var (
	ErrInvalidName     = errs.NewKind(errs.KindValidation, "lot name is required")
	ErrInvalidCapacity = errs.NewKind(errs.KindValidation, "capacity must be greater than zero")
	ErrInvalidTariff   = errs.NewKind(errs.KindValidation, "hourly tariff must be greater than zero")
	ErrInvalidDayRate  = errs.NewKind(errs.KindValidation, "day tariff must be greater than zero when set")
	ErrLotNotFound     = errs.NewKind(errs.KindNotFound, "parking lot not found")
)

// Attributes carries the mutable, admin-managed properties of a lot.
type Attributes struct {
	Name         string
	Location     string
	Address      string
	Capacity     int32
	Hourly       pricing.Money
	DayTariff    *pricing.Money
	Lat          float64
	Lng          float64
	Status       string
	ClosedReason string
	ClosedDate   *time.Time
}

func (a Attributes) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrInvalidName
	}
	if a.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if a.Hourly.Cents() <= 0 {
		return ErrInvalidTariff
	}
	if a.DayTariff != nil && a.DayTariff.Cents() <= 0 {
		return ErrInvalidDayRate
	}
	return nil
}

type ParkingLot struct {
	id        int64
	attrs     Attributes
	reserved  int32
	createdAt time.Time
}

func NewParkingLot(attrs Attributes, now time.Time) (*ParkingLot, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.Status == "" {
		attrs.Status = StatusOpen
	}
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	return &ParkingLot{attrs: attrs, createdAt: now}, nil
}

func ReconstructParkingLot(id int64, attrs Attributes, reserved int32, createdAt time.Time) *ParkingLot {
	return &ParkingLot{id: id, attrs: attrs, reserved: reserved, createdAt: createdAt}
}

func (l *ParkingLot) Update(attrs Attributes) error {
	attrs.Name = strings.TrimSpace(attrs.Name)
	if attrs.Status == "" {
		attrs.Status = l.attrs.Status
	}
	if err := attrs.validate(); err != nil {
		return err
	}
	l.attrs = attrs
	return nil
}

func (l *ParkingLot) Tariff() pricing.Tariff {
	return pricing.Tariff{Hourly: l.attrs.Hourly, DayTariff: l.attrs.DayTariff}
}

func (l *ParkingLot) ID() int64              { return l.id }
func (l *ParkingLot) Attributes() Attributes { return l.attrs }
func (l *ParkingLot) Name() string           { return l.attrs.Name }
func (l *ParkingLot) Reserved() int32        { return l.reserved }
func (l *ParkingLot) CreatedAt() time.Time   { return l.createdAt }

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)
