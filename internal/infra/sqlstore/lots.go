package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const lotColumns = `id, name, location, address, capacity, reserved, hourly_tariff_cents, day_tariff_cents,
       lat, lng, status, closed_reason, closed_date, created_at`

func scanLot(row interface{ Scan(...any) error }) (ParkingLot, error) {
	var l ParkingLot
	err := row.Scan(
		&l.ID, &l.Name, &l.Location, &l.Address, &l.Capacity, &l.Reserved,
		&l.HourlyTariffCents, &l.DayTariffCents, &l.Lat, &l.Lng,
		&l.Status, &l.ClosedReason, &l.ClosedDate, &l.CreatedAt,
	)
	return l, err
}

type ParkingLotParams struct {
	Name              string
	Location          string
	Address           string
	Capacity          int32
	HourlyTariffCents int64
	DayTariffCents    pgtype.Int8
	Lat               float64
	Lng               float64
	Status            string
	ClosedReason      pgtype.Text
	ClosedDate        pgtype.Date
}

const createParkingLot = `INSERT INTO parking_lots (
    name, location, address, capacity, hourly_tariff_cents, day_tariff_cents,
    lat, lng, status, closed_reason, closed_date, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (q *Queries) CreateParkingLot(ctx context.Context, db DBTX, arg ParkingLotParams, createdAt pgtype.Timestamptz) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createParkingLot,
		arg.Name, arg.Location, arg.Address, arg.Capacity, arg.HourlyTariffCents, arg.DayTariffCents,
		arg.Lat, arg.Lng, arg.Status, arg.ClosedReason, arg.ClosedDate, createdAt,
	).Scan(&id)
	return id, err
}

const updateParkingLot = `UPDATE parking_lots SET
    name = $2, location = $3, address = $4, capacity = $5, hourly_tariff_cents = $6,
    day_tariff_cents = $7, lat = $8, lng = $9, status = $10, closed_reason = $11, closed_date = $12
WHERE id = $1`

func (q *Queries) UpdateParkingLot(ctx context.Context, db DBTX, id int64, arg ParkingLotParams) (int64, error) {
	tag, err := db.Exec(ctx, updateParkingLot,
		id, arg.Name, arg.Location, arg.Address, arg.Capacity, arg.HourlyTariffCents,
		arg.DayTariffCents, arg.Lat, arg.Lng, arg.Status, arg.ClosedReason, arg.ClosedDate,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const findParkingLotByID = `SELECT ` + lotColumns + ` FROM parking_lots WHERE id = $1`

func (q *Queries) FindParkingLotByID(ctx context.Context, db DBTX, id int64) (ParkingLot, error) {
	return scanLot(db.QueryRow(ctx, findParkingLotByID, id))
}

const listParkingLots = `SELECT ` + lotColumns + ` FROM parking_lots ORDER BY id`

func (q *Queries) ListParkingLots(ctx context.Context, db DBTX) ([]ParkingLot, error) {
	rows, err := db.Query(ctx, listParkingLots)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (ParkingLot, error) {
		return scanLot(row)
	})
}
