package request

import (
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/usecase/commands"
)

// Tariffs arrive as decimal currency units.
type CreateLotRequest struct {
	Name         string     `json:"name" binding:"required,max=200"`
	Location     string     `json:"location" binding:"max=200"`
	Address      string     `json:"address" binding:"max=300"`
	Capacity     int32      `json:"capacity" binding:"required,gt=0"`
	HourlyTariff float64    `json:"hourly_tariff" binding:"required,gt=0,lte=1000000000"`
	DayTariff    *float64   `json:"day_tariff" binding:"omitempty,gt=0,lte=1000000000"`
	Lat          float64    `json:"lat" binding:"gte=-90,lte=90"`
	Lng          float64    `json:"lng" binding:"gte=-180,lte=180"`
	Status       string     `json:"status" binding:"omitempty,oneof=open closed"`
	ClosedReason string     `json:"closed_reason"`
	ClosedDate   *time.Time `json:"closed_date"`
}

func (r *CreateLotRequest) ToCommand() (commands.CreateLotRequest, error) {
	hourly, err := pricing.MoneyFromUnits(r.HourlyTariff)
	if err != nil {
		return commands.CreateLotRequest{}, err
	}
	day, err := centsOf(r.DayTariff)
	if err != nil {
		return commands.CreateLotRequest{}, err
	}
	return commands.CreateLotRequest{
		Name:              r.Name,
		Location:          r.Location,
		Address:           r.Address,
		Capacity:          r.Capacity,
		HourlyTariffCents: hourly.Cents(),
		DayTariffCents:    day,
		Lat:               r.Lat,
		Lng:               r.Lng,
		Status:            r.Status,
		ClosedReason:      r.ClosedReason,
		ClosedDate:        r.ClosedDate,
	}, nil
}

// UpdateLotRequest leaves absent fields untouched. Range checks happen in the domain.
type UpdateLotRequest struct {
	Name         *string    `json:"name"`
	Location     *string    `json:"location"`
	Address      *string    `json:"address"`
	Capacity     *int32     `json:"capacity"`
	HourlyTariff *float64   `json:"hourly_tariff"`
	DayTariff    *float64   `json:"day_tariff"`
	Lat          *float64   `json:"lat"`
	Lng          *float64   `json:"lng"`
	Status       *string    `json:"status" binding:"omitempty,oneof=open closed"`
	ClosedReason *string    `json:"closed_reason"`
	ClosedDate   *time.Time `json:"closed_date"`
}

func (r *UpdateLotRequest) ToCommand() (commands.UpdateLotRequest, error) {
	hourly, err := centsOf(r.HourlyTariff)
	if err != nil {
		return commands.UpdateLotRequest{}, err
	}
	day, err := centsOf(r.DayTariff)
	if err != nil {
		return commands.UpdateLotRequest{}, err
	}
	return commands.UpdateLotRequest{
		Name:              r.Name,
		Location:          r.Location,
		Address:           r.Address,
		Capacity:          r.Capacity,
		HourlyTariffCents: hourly,
		DayTariffCents:    day,
		Lat:               r.Lat,
		Lng:               r.Lng,
		Status:            r.Status,
		ClosedReason:      r.ClosedReason,
		ClosedDate:        r.ClosedDate,
	}, nil
}

func centsOf(units *float64) (*int64, error) {
	if units == nil {
		return nil, nil
	}
	m, err := pricing.MoneyFromUnits(*units)
	if err != nil {
		return nil, err
	}
	cents := m.Cents()
	return &cents, nil
}
