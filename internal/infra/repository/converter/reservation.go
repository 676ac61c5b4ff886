package converter

import (
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlstore.CreateReservationParams {
	slot := res.TimeSlot()
	return sqlstore.CreateReservationParams{
		ID:           res.ID(),
		UserID:       res.UserID(),
		ParkingLotID: res.LotID(),
		VehicleID:    res.VehicleID(),
		StartTime:    pgconv.TimeToPgtype(slot.Start()),
		EndTime:      pgconv.TimeToPgtype(slot.End()),
		CostCents:    res.Cost().Cents(),
		Status:       res.Status().String(),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlstore.UpdateReservationParams {
	slot := res.TimeSlot()
	return sqlstore.UpdateReservationParams{
		ID:           res.ID(),
		Version:      res.Version(),
		ParkingLotID: res.LotID(),
		VehicleID:    res.VehicleID(),
		StartTime:    pgconv.TimeToPgtype(slot.Start()),
		EndTime:      pgconv.TimeToPgtype(slot.End()),
		CostCents:    res.Cost().Cents(),
		Status:       res.Status().String(),
	}
}

func ReservationFromRow(row sqlstore.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		row.ID,
		row.UserID, row.ParkingLotID, row.VehicleID,
		reservation.ReconstructTimeSlot(row.StartTime.Time, row.EndTime.Time),
		pricing.NewMoney(row.CostCents),
		reservation.Status(row.Status),
		row.CreatedAt.Time,
		row.Version,
	)
}

func SessionToCreateParams(s *session.ParkingSession) sqlstore.CreateParkingSessionParams {
	return sqlstore.CreateParkingSessionParams{
		UserID:       s.UserID(),
		VehicleID:    s.VehicleID(),
		LicensePlate: s.LicensePlate(),
		ParkingLotID: s.LotID(),
		StartTime:    pgconv.TimeToPgtype(s.Start()),
		Status:       s.Status().String(),
	}
}

func SessionToStopParams(s *session.ParkingSession) sqlstore.StopParkingSessionParams {
	return sqlstore.StopParkingSessionParams{
		ID:        s.ID(),
		Version:   s.Version(),
		EndTime:   pgconv.TimePtrToPgtype(s.End()),
		CostCents: moneyPtrToPgtype(s.Cost()),
		Status:    s.Status().String(),
	}
}

func SessionFromRow(row sqlstore.ParkingSession) *session.ParkingSession {
	return session.ReconstructSession(
		row.ID, row.UserID, row.VehicleID,
		row.LicensePlate,
		row.ParkingLotID,
		row.StartTime.Time,
		pgconv.TimePtrFromPgtype(row.EndTime),
		moneyPtrFromPgtype(row.CostCents),
		session.Status(row.Status),
		row.Version,
	)
}

func moneyPtrToPgtype(m *pricing.Money) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{Valid: false}
	}
	return pgtype.Int8{Int64: m.Cents(), Valid: true}
}

func moneyPtrFromPgtype(pi pgtype.Int8) *pricing.Money {
	if !pi.Valid {
		return nil
	}
	m := pricing.NewMoney(pi.Int64)
	return &m
}
