package repository

import (
	"context"

	"parking-api/internal/domain/reservation"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateReservationParams) error
	UpdateReservation(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlstore.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx sqlstore.DBTX, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservation(ctx, tx, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation version changed", nil, infra.KindVersionConflict)
	}
	return nil
}
