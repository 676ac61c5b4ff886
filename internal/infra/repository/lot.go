package repository

import (
	"context"

	"parking-api/internal/domain/lot"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type LotWriteQueries interface {
	CreateParkingLot(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ParkingLotParams, createdAt pgtype.Timestamptz) (int64, error)
	UpdateParkingLot(ctx context.Context, db sqlstore.DBTX, id int64, arg sqlstore.ParkingLotParams) (int64, error)
}

type LotRepository struct {
	queries LotWriteQueries
}

func NewLotRepository(queries LotWriteQueries) *LotRepository {
	return &LotRepository{queries: queries}
}

func (r *LotRepository) Create(ctx context.Context, tx sqlstore.DBTX, l *lot.ParkingLot) (int64, error) {
	id, err := r.queries.CreateParkingLot(ctx, tx, converter.LotToParams(l), pgconv.TimeToPgtype(l.CreatedAt()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create parking lot", err)
	}
	return id, nil
}

func (r *LotRepository) Update(ctx context.Context, tx sqlstore.DBTX, l *lot.ParkingLot) error {
	affected, err := r.queries.UpdateParkingLot(ctx, tx, l.ID(), converter.LotToParams(l))
	if err != nil {
		return infra.WrapRepoErr("failed to update parking lot", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}
