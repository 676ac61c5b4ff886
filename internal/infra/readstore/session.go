package readstore

import (
	"context"

	"parking-api/internal/domain/session"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
)

type SessionReadQueries interface {
	FindLatestOpenSessionByVehicle(ctx context.Context, db sqlstore.DBTX, vehicleID int64) (sqlstore.ParkingSession, error)
	ListSessionsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]sqlstore.ParkingSession, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      sqlstore.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db sqlstore.DBTX) *SessionReadStore {
	return &SessionReadStore{queries: queries, db: db}
}

func (r *SessionReadStore) LatestOpenByVehicle(ctx context.Context, vehicleID int64) (*session.ParkingSession, error) {
	row, err := r.queries.FindLatestOpenSessionByVehicle(ctx, r.db, vehicleID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no open parking session", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find open parking session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *SessionReadStore) SessionsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*session.ParkingSession, error) {
	rows, err := r.queries.ListSessionsByUser(ctx, db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking sessions", err)
	}
	out := make([]*session.ParkingSession, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SessionFromRow(row))
	}
	return out, nil
}
