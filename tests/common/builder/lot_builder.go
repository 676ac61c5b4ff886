//go:build unit || e2e

package builder

import (
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
)

type LotBuilder struct {
	ID             int64
	Name           string
	Capacity       int32
	HourlyCents    int64
	DayTariffCents *int64
	Status         string
	CreatedAt      time.Time
}

func NewLotBuilder() *LotBuilder {
	day := int64(2500)
	return &LotBuilder{
		ID:             10,
		Name:           "Central Garage",
		Capacity:       100,
		HourlyCents:    500,
		DayTariffCents: &day,
		Status:         lot.StatusOpen,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *LotBuilder) WithoutDayTariff() *LotBuilder {
	b.DayTariffCents = nil
	return b
}

func (b *LotBuilder) WithID(id int64) *LotBuilder {
	b.ID = id
	return b
}

func (b *LotBuilder) BuildDomain() *lot.ParkingLot {
	attrs := lot.Attributes{
		Name:     b.Name,
		Location: "Downtown",
		Address:  "1 Main St",
		Capacity: b.Capacity,
		Hourly:   pricing.NewMoney(b.HourlyCents),
		Status:   b.Status,
	}
	if b.DayTariffCents != nil {
		day := pricing.NewMoney(*b.DayTariffCents)
		attrs.DayTariff = &day
	}
	return lot.ReconstructParkingLot(b.ID, attrs, 0, b.CreatedAt)
}
