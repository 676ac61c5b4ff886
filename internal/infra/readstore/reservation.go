package readstore

import (
	"context"

	"parking-api/internal/domain/reservation"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/queries"
)

type ReservationReadQueries interface {
	FindReservationByID(ctx context.Context, db sqlstore.DBTX, id string) (sqlstore.Reservation, error)
	ListReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]sqlstore.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlstore.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlstore.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByUser returns summaries in start time order.
func (r *ReservationReadStore) ListByUser(ctx context.Context, userID int64) ([]*queries.ReservationSummary, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	summaries := make([]*queries.ReservationSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &queries.ReservationSummary{
			ID:           row.ID,
			ParkingLotID: row.ParkingLotID,
			VehicleID:    row.VehicleID,
			StartTime:    pgconv.TimeFromPgtype(row.StartTime),
			EndTime:      pgconv.TimeFromPgtype(row.EndTime),
			Status:       row.Status,
			CostCents:    row.CostCents,
		})
	}
	return summaries, nil
}

func (r *ReservationReadStore) Reservation(ctx context.Context, id string) (*reservation.Reservation, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationReadStore) ReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.ReservationFromRow(row))
	}
	return out, nil
}
