package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionColumns = `id, user_id, vehicle_id, license_plate, parking_lot_id, start_time, end_time,
       cost_cents, status, version`

func scanSession(row interface{ Scan(...any) error }) (ParkingSession, error) {
	var s ParkingSession
	err := row.Scan(
		&s.ID, &s.UserID, &s.VehicleID, &s.LicensePlate, &s.ParkingLotID,
		&s.StartTime, &s.EndTime, &s.CostCents, &s.Status, &s.Version,
	)
	return s, err
}

const createParkingSession = `INSERT INTO parking_sessions (
    user_id, vehicle_id, license_plate, parking_lot_id, start_time, status, version
) VALUES ($1, $2, $3, $4, $5, $6, 1)
RETURNING id`

type CreateParkingSessionParams struct {
	UserID       int64
	VehicleID    int64
	LicensePlate string
	ParkingLotID int64
	StartTime    pgtype.Timestamptz
	Status       string
}

func (q *Queries) CreateParkingSession(ctx context.Context, db DBTX, arg CreateParkingSessionParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createParkingSession,
		arg.UserID, arg.VehicleID, arg.LicensePlate, arg.ParkingLotID, arg.StartTime, arg.Status,
	).Scan(&id)
	return id, err
}

const stopParkingSession = `UPDATE parking_sessions SET
    end_time = $3, cost_cents = $4, status = $5, version = version + 1
WHERE id = $1 AND version = $2`

type StopParkingSessionParams struct {
	ID        int64
	Version   int32
	EndTime   pgtype.Timestamptz
	CostCents pgtype.Int8
	Status    string
}

func (q *Queries) StopParkingSession(ctx context.Context, db DBTX, arg StopParkingSessionParams) (int64, error) {
	tag, err := db.Exec(ctx, stopParkingSession, arg.ID, arg.Version, arg.EndTime, arg.CostCents, arg.Status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findLatestOpenSessionByVehicle = `SELECT ` + sessionColumns + `
FROM parking_sessions
WHERE vehicle_id = $1 AND end_time IS NULL
ORDER BY start_time DESC
LIMIT 1`

func (q *Queries) FindLatestOpenSessionByVehicle(ctx context.Context, db DBTX, vehicleID int64) (ParkingSession, error) {
	return scanSession(db.QueryRow(ctx, findLatestOpenSessionByVehicle, vehicleID))
}

const listSessionsByUser = `SELECT ` + sessionColumns + `
FROM parking_sessions WHERE user_id = $1 ORDER BY start_time, id`

func (q *Queries) ListSessionsByUser(ctx context.Context, db DBTX, userID int64) ([]ParkingSession, error) {
	rows, err := db.Query(ctx, listSessionsByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ParkingSession, error) {
		return scanSession(row)
	})
}
