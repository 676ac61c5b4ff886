//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parking-api/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var defaultPasswordHash = sync.OnceValues(func() (string, error) {
	return password.HashPassword(DefaultPassword)
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) int64 {
	t.Helper()

	hash, err := defaultPasswordHash()
	require.NoError(t, err)

	var id int64
	err = db.QueryRow(context.Background(), `
		INSERT INTO users (email, name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
		RETURNING id`,
		email, strings.Split(email, "@")[0], hash, role).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestLot inserts an open lot with the given tariffs in cents. dayTariff 0 leaves
// the day tariff unset.
func CreateTestLot(t *testing.T, db DBLike, name string, hourly, dayTariff int64) int64 {
	t.Helper()

	var day any
	if dayTariff > 0 {
		day = dayTariff
	}
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO parking_lots (name, capacity, hourly_tariff_cents, day_tariff_cents)
		VALUES ($1, 100, $2, $3)
		RETURNING id`,
		name, hourly, day).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestVehicle(t *testing.T, db DBLike, userID int64, plate string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO vehicles (user_id, license_plate)
		VALUES ($1, $2)
		RETURNING id`,
		userID, plate).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db DBLike, userID int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
}

// InsertPayment writes a payments row directly. payments.reservation_id has no foreign
// key, so reservationID may point nowhere.
func InsertPayment(t *testing.T, db DBLike, transactionID, reservationID string, cents int64, status string) {
	t.Helper()

	now := time.Now().UTC()
	_, err := db.Exec(context.Background(), `
		INSERT INTO payments (transaction_id, reservation_id, amount_cents, t_amount_cents, method,
		                      status, created_at, completed_at, hash, t_date)
		VALUES ($1, $2, $3, $3, 'Card', $4, $5, $5, $1, $5)`,
		transactionID, reservationID, cents, status, now)
	require.NoError(t, err)
}

func DeleteReservation(t *testing.T, db DBLike, reservationID string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "DELETE FROM reservations WHERE id = $1", reservationID)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table and restarts identities.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := db.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := db.Exec(ctx, sqlAny.(string))
	return err
}
