package request

import (
	"time"

	"parking-api/internal/usecase/commands"
)

type CreateReservationRequest struct {
	ParkingLotID int64     `json:"parking_lot_id" binding:"required,gt=0"`
	VehicleID    int64     `json:"vehicle_id" binding:"required,gt=0"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
}

func (r *CreateReservationRequest) ToCommand() commands.ReservationRequest {
	return commands.ReservationRequest{
		ParkingLotID: r.ParkingLotID,
		VehicleID:    r.VehicleID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
}

// UpdateReservationRequest carries no binding rules: ownership is checked before the
// payload, so a stranger gets 403 rather than 400.
type UpdateReservationRequest struct {
	ParkingLotID int64     `json:"parking_lot_id"`
	VehicleID    int64     `json:"vehicle_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

func (r *UpdateReservationRequest) ToCommand() commands.ReservationRequest {
	return commands.ReservationRequest{
		ParkingLotID: r.ParkingLotID,
		VehicleID:    r.VehicleID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
}
