package repository

import (
	"context"

	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
)

type VehicleWriteQueries interface {
	CreateVehicle(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateVehicleParams) (int64, error)
}

type VehicleRepository struct {
	queries VehicleWriteQueries
}

func NewVehicleRepository(queries VehicleWriteQueries) *VehicleRepository {
	return &VehicleRepository{queries: queries}
}

func (r *VehicleRepository) Create(ctx context.Context, tx sqlstore.DBTX, v *vehicle.Vehicle) (int64, error) {
	id, err := r.queries.CreateVehicle(ctx, tx, converter.VehicleToCreateParams(v))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return id, nil
}
