//go:build unit || e2e

package builder

import (
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/session"
)

type SessionBuilder struct {
	ID        int64
	UserID    int64
	VehicleID int64
	Plate     string
	LotID     int64
	Start     time.Time
	End       *time.Time
	CostCents *int64
	Status    session.Status
	Version   int32
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:        30,
		UserID:    1,
		VehicleID: 20,
		Plate:     "AB-123",
		LotID:     10,
		Start:     time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		Status:    session.StatusActive,
		Version:   1,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

// Stopped closes the session at end with the given cost.
func (b *SessionBuilder) Stopped(end time.Time, costCents int64) *SessionBuilder {
	b.End = &end
	b.CostCents = &costCents
	b.Status = session.StatusCompleted
	return b
}

func (b *SessionBuilder) BuildDomain() *session.ParkingSession {
	var cost *pricing.Money
	if b.CostCents != nil {
		m := pricing.NewMoney(*b.CostCents)
		cost = &m
	}
	return session.ReconstructSession(b.ID, b.UserID, b.VehicleID, b.Plate, b.LotID, b.Start, b.End, cost, b.Status, b.Version)
}
