//go:build unit || e2e

package builder

import (
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID        string
	UserID    int64
	LotID     int64
	VehicleID int64
	Start     time.Time
	End       time.Time
	CostCents int64
	Status    reservation.Status
	CreatedAt time.Time
	Version   int32
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        "0123456789abcdef0123456789abcdef",
		UserID:    1,
		LotID:     10,
		VehicleID: 20,
		Start:     start,
		End:       start.Add(4 * time.Hour),
		CostCents: 2000,
		Status:    reservation.StatusConfirmed,
		CreatedAt: start.Add(-24 * time.Hour),
		Version:   1,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID,
		b.UserID, b.LotID, b.VehicleID,
		reservation.ReconstructTimeSlot(b.Start, b.End),
		pricing.NewMoney(b.CostCents),
		b.Status,
		b.CreatedAt,
		b.Version,
	)
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithUserID(userID int64) *ReservationBuilder {
	b.UserID = userID
	return b
}
