package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const vehicleColumns = `id, user_id, license_plate, make, model, color, year, created_at`

func scanVehicle(row interface{ Scan(...any) error }) (Vehicle, error) {
	var v Vehicle
	err := row.Scan(&v.ID, &v.UserID, &v.LicensePlate, &v.Make, &v.Model, &v.Color, &v.Year, &v.CreatedAt)
	return v, err
}

const createVehicle = `INSERT INTO vehicles (user_id, license_plate, make, model, color, year, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type CreateVehicleParams struct {
	UserID       int64
	LicensePlate string
	Make         string
	Model        string
	Color        string
	Year         int32
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateVehicle(ctx context.Context, db DBTX, arg CreateVehicleParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createVehicle,
		arg.UserID, arg.LicensePlate, arg.Make, arg.Model, arg.Color, arg.Year, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const findVehicleByID = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

func (q *Queries) FindVehicleByID(ctx context.Context, db DBTX, id int64) (Vehicle, error) {
	return scanVehicle(db.QueryRow(ctx, findVehicleByID, id))
}

const findVehicleByPlateAndOwner = `SELECT ` + vehicleColumns + `
FROM vehicles WHERE license_plate = $1 AND user_id = $2`

func (q *Queries) FindVehicleByPlateAndOwner(ctx context.Context, db DBTX, plate string, userID int64) (Vehicle, error) {
	return scanVehicle(db.QueryRow(ctx, findVehicleByPlateAndOwner, plate, userID))
}

const listVehiclesByUser = `SELECT ` + vehicleColumns + `
FROM vehicles WHERE user_id = $1 ORDER BY id`

func (q *Queries) ListVehiclesByUser(ctx context.Context, db DBTX, userID int64) ([]Vehicle, error) {
	rows, err := db.Query(ctx, listVehiclesByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Vehicle, error) {
		return scanVehicle(row)
	})
}
