package readstore

import (
	"context"

	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
	"parking-api/internal/infra/sqlstore"
)

// BillingReadStore feeds the billing views with every reservation and session of a
// user. Both reads run on the caller's db so they can share one snapshot.
type BillingReadStore struct {
	reservations *ReservationReadStore
	sessions     *SessionReadStore
}

func NewBillingReadStore(reservations *ReservationReadStore, sessions *SessionReadStore) *BillingReadStore {
	return &BillingReadStore{reservations: reservations, sessions: sessions}
}

func (r *BillingReadStore) ReservationsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*reservation.Reservation, error) {
	return r.reservations.ReservationsByUser(ctx, db, userID)
}

func (r *BillingReadStore) SessionsByUser(ctx context.Context, db sqlstore.DBTX, userID int64) ([]*session.ParkingSession, error) {
	return r.sessions.SessionsByUser(ctx, db, userID)
}
