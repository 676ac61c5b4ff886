package response

import (
	"time"

	"parking-api/internal/domain/reservation"
	"parking-api/internal/usecase/queries"
)

type ReservationResponse struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	ParkingLotID int64     `json:"parking_lot_id"`
	VehicleID    int64     `json:"vehicle_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Cost         float64   `json:"cost"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:           r.ID(),
		UserID:       r.UserID(),
		ParkingLotID: r.LotID(),
		VehicleID:    r.VehicleID(),
		StartTime:    r.TimeSlot().Start(),
		EndTime:      r.TimeSlot().End(),
		Status:       r.Status().String(),
		Cost:         r.Cost().Units(),
		CreatedAt:    r.CreatedAt(),
	}
}

type ReservationListResponse struct {
	ID           string    `json:"id"`
	ParkingLotID int64     `json:"parking_lot_id"`
	VehicleID    int64     `json:"vehicle_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Cost         float64   `json:"cost"`
}

func FromReservationSummaries(items []*queries.ReservationSummary) []*ReservationListResponse {
	res := make([]*ReservationListResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListResponse{
			ID:           it.ID,
			ParkingLotID: it.ParkingLotID,
			VehicleID:    it.VehicleID,
			StartTime:    it.StartTime,
			EndTime:      it.EndTime,
			Status:       it.Status,
			Cost:         units(it.CostCents),
		}
	}
	return res
}
