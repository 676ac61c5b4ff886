//go:build unit || e2e

package builder

import (
	"time"

	"parking-api/internal/domain/vehicle"
)

type VehicleBuilder struct {
	ID     int64
	UserID int64
	Plate  string
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{ID: 20, UserID: 1, Plate: "AB-123"}
}

func (b *VehicleBuilder) WithUserID(userID int64) *VehicleBuilder {
	b.UserID = userID
	return b
}

func (b *VehicleBuilder) BuildDomain() *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(b.ID, b.UserID, b.Plate, vehicle.Details{Make: "Toyota", Model: "Corolla"},
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}
