package commands

import (
	"context"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/pkg/patch"
	"parking-api/internal/usecase/shared"
)

type CreateLotRequest struct {
	Name              string
	Location          string
	Address           string
	Capacity          int32
	HourlyTariffCents int64
	DayTariffCents    *int64
	Lat               float64
	Lng               float64
	Status            string
	ClosedReason      string
	ClosedDate        *time.Time
}

// UpdateLotRequest is a partial update; nil fields keep their stored value.
type UpdateLotRequest struct {
	Name              *string
	Location          *string
	Address           *string
	Capacity          *int32
	HourlyTariffCents *int64
	DayTariffCents    *int64
	Lat               *float64
	Lng               *float64
	Status            *string
	ClosedReason      *string
	ClosedDate        *time.Time
}

// LotCommands are admin only; the role is enforced by the router.
type LotCommands interface {
	CreateLot(ctx context.Context, req CreateLotRequest) (int64, error)
	UpdateLot(ctx context.Context, id int64, req UpdateLotRequest) error
}

type lotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLotCommands(uow shared.UnitOfWork, clk clock.Clock) LotCommands {
	return &lotCommandsImpl{uow: uow, clock: clk}
}

func (c *lotCommandsImpl) CreateLot(ctx context.Context, req CreateLotRequest) (int64, error) {
	attrs := lot.Attributes{
		Name:         req.Name,
		Location:     req.Location,
		Address:      req.Address,
		Capacity:     req.Capacity,
		Hourly:       pricing.NewMoney(req.HourlyTariffCents),
		DayTariff:    moneyPtr(req.DayTariffCents),
		Lat:          req.Lat,
		Lng:          req.Lng,
		Status:       req.Status,
		ClosedReason: req.ClosedReason,
		ClosedDate:   req.ClosedDate,
	}
	l, err := lot.NewParkingLot(attrs, c.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Lots().Create(ctx, tx.DB(), l)
		id = created
		return cerr
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (c *lotCommandsImpl) UpdateLot(ctx context.Context, id int64, req UpdateLotRequest) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Reads().LotByID(ctx, id)
		if err != nil {
			return translate(err, lot.ErrLotNotFound)
		}

		cur := l.Attributes()
		attrs := lot.Attributes{
			Name:         patch.Coalesce(req.Name, cur.Name),
			Location:     patch.Coalesce(req.Location, cur.Location),
			Address:      patch.Coalesce(req.Address, cur.Address),
			Capacity:     patch.Coalesce(req.Capacity, cur.Capacity),
			Hourly:       patch.Map(req.HourlyTariffCents, pricing.NewMoney, cur.Hourly),
			DayTariff:    patch.First(moneyPtr(req.DayTariffCents), cur.DayTariff),
			Lat:          patch.Coalesce(req.Lat, cur.Lat),
			Lng:          patch.Coalesce(req.Lng, cur.Lng),
			Status:       patch.Coalesce(req.Status, cur.Status),
			ClosedReason: patch.Coalesce(req.ClosedReason, cur.ClosedReason),
			ClosedDate:   patch.First(req.ClosedDate, cur.ClosedDate),
		}

		if err := l.Update(attrs); err != nil {
			return err
		}
		return translate(tx.Lots().Update(ctx, tx.DB(), l), lot.ErrLotNotFound)
	})
}

func moneyPtr(cents *int64) *pricing.Money {
	if cents == nil {
		return nil
	}
	m := pricing.NewMoney(*cents)
	return &m
}
