package response

import (
	"time"

	"parking-api/internal/domain/session"
	"parking-api/internal/usecase/commands"

	"gopkg.in/guregu/null.v4"
)

type SessionResponse struct {
	ID           int64      `json:"id"`
	ParkingLotID int64      `json:"parking_lot_id"`
	VehicleID    int64      `json:"vehicle_id"`
	LicensePlate string     `json:"license_plate"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      null.Time  `json:"end_time"`
	Cost         null.Float `json:"cost"`
	Status       string     `json:"status"`
}

func FromSession(s *session.ParkingSession) *SessionResponse {
	res := &SessionResponse{
		ID:           s.ID(),
		ParkingLotID: s.LotID(),
		VehicleID:    s.VehicleID(),
		LicensePlate: s.LicensePlate(),
		StartTime:    s.Start(),
		EndTime:      null.TimeFromPtr(s.End()),
		Status:       s.Status().String(),
	}
	if cost := s.Cost(); cost != nil {
		res.Cost = null.FloatFrom(cost.Units())
	}
	return res
}

type StopSessionResponse struct {
	*SessionResponse
	BilledHours int64 `json:"billed_hours"`
	ExtraDays   int64 `json:"extra_days"`
}

func FromStopResult(r *commands.StopResult) *StopSessionResponse {
	return &StopSessionResponse{
		SessionResponse: FromSession(r.Session),
		BilledHours:     r.Quote.Hours,
		ExtraDays:       r.Quote.ExtraDays,
	}
}
