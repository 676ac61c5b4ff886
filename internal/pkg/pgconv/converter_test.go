//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"parking-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestNullableRoundTrip(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))

	cents := int64(2500)
	assert.Nil(t, pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(nil)))
	assert.Equal(t, cents, *pgconv.Int64PtrFromPgtype(pgconv.Int64PtrToPgtype(&cents)))

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(nil)))
	assert.Equal(t, "closed", *pgconv.StringPtrFromPgtype(pgconv.StringToPgtype("closed")))
}

func TestErrorClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_parking_sessions_open_vehicle"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, pgconv.IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, pgconv.IsUniqueViolation(fk))
	assert.True(t, pgconv.IsForeignKeyViolation(fk))
	assert.Equal(t, "uq_parking_sessions_open_vehicle", pgconv.ConstraintName(unique))
	assert.Empty(t, pgconv.ConstraintName(errors.New("plain")))

	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(nil))
}
