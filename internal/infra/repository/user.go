package repository

import (
	"context"
	"time"

	"parking-api/internal/domain/user"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateUserParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlstore.DBTX, id int64, at pgtype.Timestamptz) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlstore.DBTX, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlstore.DBTX, userID int64, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
