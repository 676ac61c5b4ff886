package repository

import (
	"context"

	"parking-api/internal/domain/session"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
)

type SessionWriteQueries interface {
	CreateParkingSession(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateParkingSessionParams) (int64, error)
	StopParkingSession(ctx context.Context, db sqlstore.DBTX, arg sqlstore.StopParkingSessionParams) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
}

func NewSessionRepository(queries SessionWriteQueries) *SessionRepository {
	return &SessionRepository{queries: queries}
}

// Create relies on the partial unique index over open sessions; a second open session
// for the vehicle comes back as infra.KindDuplicateKey.
func (r *SessionRepository) Create(ctx context.Context, tx sqlstore.DBTX, s *session.ParkingSession) (int64, error) {
	id, err := r.queries.CreateParkingSession(ctx, tx, converter.SessionToCreateParams(s))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create parking session", err)
	}
	return id, nil
}

func (r *SessionRepository) Stop(ctx context.Context, tx sqlstore.DBTX, s *session.ParkingSession) error {
	affected, err := r.queries.StopParkingSession(ctx, tx, converter.SessionToStopParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to stop parking session", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("parking session version changed", nil, infra.KindVersionConflict)
	}
	return nil
}
