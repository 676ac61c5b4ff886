package readstore

import (
	"context"

	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/queries"
)

type VehicleReadQueries interface {
	FindVehicleByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.Vehicle, error)
	FindVehicleByPlateAndOwner(ctx context.Context, db sqlstore.DBTX, plate string, userID int64) (sqlstore.Vehicle, error)
	ListVehiclesByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]sqlstore.Vehicle, error)
}

type VehicleReadStore struct {
	queries VehicleReadQueries
	db      sqlstore.DBTX
}

func NewVehicleReadStore(queries VehicleReadQueries, db sqlstore.DBTX) *VehicleReadStore {
	return &VehicleReadStore{queries: queries, db: db}
}

func (r *VehicleReadStore) ListByUser(ctx context.Context, userID int64) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListVehiclesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	views := make([]*queries.VehicleView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.VehicleView{
			ID:           row.ID,
			UserID:       row.UserID,
			LicensePlate: row.LicensePlate,
			Make:         row.Make,
			Model:        row.Model,
			Color:        row.Color,
			Year:         row.Year,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return views, nil
}

func (r *VehicleReadStore) Vehicle(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	row, err := r.queries.FindVehicleByID(ctx, r.db, id)
	return vehicleResult(row, err)
}

// ByPlateAndOwner expects a normalized plate.
func (r *VehicleReadStore) ByPlateAndOwner(ctx context.Context, plate string, ownerID int64) (*vehicle.Vehicle, error) {
	row, err := r.queries.FindVehicleByPlateAndOwner(ctx, r.db, plate, ownerID)
	return vehicleResult(row, err)
}

func vehicleResult(row sqlstore.Vehicle, err error) (*vehicle.Vehicle, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return converter.VehicleFromRow(row), nil
}
