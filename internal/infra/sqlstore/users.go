package sqlstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, name, password_hash, role, is_active, last_login, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt)
	return u, err
}

const createUser = `INSERT INTO users (email, name, password_hash, role, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type CreateUserParams struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createUser,
		arg.Email, arg.Name, arg.PasswordHash, arg.Role, arg.IsActive, arg.CreatedAt,
	).Scan(&id)
	return id, err
}

const findUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id int64) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const updateUserLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id int64, at pgtype.Timestamptz) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id, at)
	return err
}
