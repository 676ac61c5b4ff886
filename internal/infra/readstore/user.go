package readstore

import (
	"context"

	"parking-api/internal/domain/user"
	"parking-api/internal/infra"
	"parking-api/internal/infra/repository/converter"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/pgconv"
	"parking-api/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlstore.DBTX, id int64) (sqlstore.User, error)
	FindUserByEmail(ctx context.Context, db sqlstore.DBTX, email string) (sqlstore.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorizedUserView(row), nil
}

// Account loads the full aggregate, password hash included.
func (r *UserReadStore) Account(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUser(row)
}

func (r *UserReadStore) AccountByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUser(row)
}

func (r *UserReadStore) findByID(ctx context.Context, id int64) (sqlstore.User, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlstore.User{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlstore.User{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}

func toUser(row sqlstore.User) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err)
	}
	return u, nil
}

func toAuthorizedUserView(row sqlstore.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Role:     row.Role,
		IsActive: row.IsActive,
	}
}
