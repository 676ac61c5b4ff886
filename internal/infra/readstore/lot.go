package readstore

import (
	"context"

	"gopkg.in/guregu/null.v4"

	"parking-api/internal/domain/lot"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/queries"
)

type LotReadQueries interface {
	FindParkingLotByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.ParkingLot, error)
	ListParkingLots(ctx context.Context, db sqlstore.DBTX) ([]sqlstore.ParkingLot, error)
}

type LotReadStore struct {
	queries LotReadQueries
	db      sqlstore.DBTX
}

func NewLotReadStore(queries LotReadQueries, db sqlstore.DBTX) *LotReadStore {
	return &LotReadStore{queries: queries, db: db}
}

func (r *LotReadStore) List(ctx context.Context) ([]*queries.LotView, error) {
	rows, err := r.queries.ListParkingLots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking lots", err)
	}
	views := make([]*queries.LotView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toLotView(row))
	}
	return views, nil
}

func (r *LotReadStore) FindByID(ctx context.Context, id int64) (*queries.LotView, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toLotView(row), nil
}

func (r *LotReadStore) Lot(ctx context.Context, id int64) (*lot.ParkingLot, error) {
	row, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.LotFromRow(row), nil
}

func (r *LotReadStore) find(ctx context.Context, id int64) (sqlstore.ParkingLot, error) {
	row, err := r.queries.FindParkingLotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlstore.ParkingLot{}, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return sqlstore.ParkingLot{}, infra.WrapRepoErr("failed to find parking lot", err)
	}
	return row, nil
}

func toLotView(row sqlstore.ParkingLot) *queries.LotView {
	return &queries.LotView{
		ID:                row.ID,
		Name:              row.Name,
		Location:          row.Location,
		Address:           row.Address,
		Capacity:          row.Capacity,
		Reserved:          row.Reserved,
		HourlyTariffCents: row.HourlyTariffCents,
		DayTariffCents:    null.IntFromPtr(pgconv.Int64PtrFromPgtype(row.DayTariffCents)),
		Lat:               row.Lat,
		Lng:               row.Lng,
		Status:            row.Status,
		ClosedReason:      null.StringFromPtr(pgconv.StringPtrFromPgtype(row.ClosedReason)),
		ClosedDate:        null.TimeFromPtr(pgconv.DatePtrFromPgtype(row.ClosedDate)),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
