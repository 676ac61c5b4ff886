package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, parking_lot_id, vehicle_id, start_time, end_time, cost_cents,
       status, created_at, version`

func scanReservation(row interface{ Scan(...any) error }) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID, &r.UserID, &r.ParkingLotID, &r.VehicleID, &r.StartTime, &r.EndTime,
		&r.CostCents, &r.Status, &r.CreatedAt, &r.Version,
	)
	return r, err
}

func collectReservations(rows pgx.Rows, err error) ([]Reservation, error) {
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Reservation, error) {
		return scanReservation(row)
	})
}

const createReservation = `INSERT INTO reservations (
    id, user_id, parking_lot_id, vehicle_id, start_time, end_time, cost_cents, status, created_at, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)`

type CreateReservationParams struct {
	ID           string
	UserID       int64
	ParkingLotID int64
	VehicleID    int64
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	CostCents    int64
	Status       string
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ID, arg.UserID, arg.ParkingLotID, arg.VehicleID, arg.StartTime, arg.EndTime,
		arg.CostCents, arg.Status, arg.CreatedAt,
	)
	return err
}

// updateReservation is a compare-and-swap on version. Zero rows affected means the row
// is gone or another writer got there first.
const updateReservation = `UPDATE reservations SET
    parking_lot_id = $3, vehicle_id = $4, start_time = $5, end_time = $6, cost_cents = $7,
    status = $8, version = version + 1
WHERE id = $1 AND version = $2`

type UpdateReservationParams struct {
	ID           string
	Version      int32
	ParkingLotID int64
	VehicleID    int64
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	CostCents    int64
	Status       string
}

func (q *Queries) UpdateReservation(ctx context.Context, db DBTX, arg UpdateReservationParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservation,
		arg.ID, arg.Version, arg.ParkingLotID, arg.VehicleID, arg.StartTime, arg.EndTime,
		arg.CostCents, arg.Status,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id string) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, findReservationByID, id))
}

const listReservationsByUser = `SELECT ` + reservationColumns + `
FROM reservations WHERE user_id = $1 ORDER BY start_time, id`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID int64) ([]Reservation, error) {
	return collectReservations(db.Query(ctx, listReservationsByUser, userID))
}
