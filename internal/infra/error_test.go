//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"parking-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other failure", err: errors.New("connection reset"), want: infra.KindDBFailure},
		{
			name: "explicit kind wins",
			err:  nil,
			kind: []infra.RepositoryErrorKind{infra.KindVersionConflict},
			want: infra.KindVersionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(err, tc.want))
			assert.Contains(t, err.Error(), "op failed")
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestConstraint(t *testing.T) {
	err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505", ConstraintName: "uq_vehicles_owner_plate"})
	assert.Equal(t, "uq_vehicles_owner_plate", infra.Constraint(err))
}
