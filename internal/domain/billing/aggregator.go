// Package billing merges reservations and parking sessions into the upcoming and
// history views. It only reads the entities handed to it.
package billing

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/session"
)

type Kind string

const (
	KindReservation Kind = "Reservation"
	KindSession     Kind = "ParkingSession"
)

// Item is one line of a billing view. Amount is nil for a session that is still open.
type Item struct {
	ID          string
	Kind        Kind
	Date        time.Time
	Amount      *pricing.Money
	Status      string
	Description string
}

// Upcoming lists what the user still owes or has booked: reservations that are neither
// cancelled nor paid, and sessions that are neither cancelled nor "Paid". Items are
// ordered by start time, oldest first.
func Upcoming(reservations []*reservation.Reservation, sessions []*session.ParkingSession) []Item {
	items := make([]Item, 0, len(reservations)+len(sessions))
	for _, r := range reservations {
		if !r.Status().IsOutstanding() {
			continue
		}
		cost := r.Cost()
		items = append(items, Item{
			ID:     r.ID(),
			Kind:   KindReservation,
			Date:   r.TimeSlot().Start(),
			Amount: &cost,
			Status: r.Status().String(),
		})
	}
	for _, s := range sessions {
		if !s.Status().IsOutstanding() {
			continue
		}
		items = append(items, Item{
			ID:     sessionID(s),
			Kind:   KindSession,
			Date:   s.Start(),
			Amount: s.Cost(),
			Status: s.Status().String(),
		})
	}

	slices.SortFunc(items, func(a, b Item) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return compareIdentity(a, b)
	})
	return items
}

// History lists settled items, newest first. A paid reservation is dated by its
// creation time and a settled session by its end time, or now when the end is missing.
func History(reservations []*reservation.Reservation, sessions []*session.ParkingSession, now time.Time) []Item {
	items := make([]Item, 0, len(reservations)+len(sessions))
	for _, r := range reservations {
		if r.Status() != reservation.StatusPaid {
			continue
		}
		cost := r.Cost()
		items = append(items, Item{
			ID:          r.ID(),
			Kind:        KindReservation,
			Date:        r.CreatedAt(),
			Amount:      &cost,
			Status:      r.Status().String(),
			Description: fmt.Sprintf("Reservation at lot %d", r.LotID()),
		})
	}
	for _, s := range sessions {
		if !s.Status().IsSettled() {
			continue
		}
		date := now
		if !s.IsOpen() {
			date = *s.End()
		}
		items = append(items, Item{
			ID:          sessionID(s),
			Kind:        KindSession,
			Date:        date,
			Amount:      s.Cost(),
			Status:      s.Status().String(),
			Description: fmt.Sprintf("Parking session for %s at lot %d", s.LicensePlate(), s.LotID()),
		})
	}

	slices.SortFunc(items, func(a, b Item) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return compareIdentity(b, a)
	})
	return items
}

func sessionID(s *session.ParkingSession) string {
	return strconv.FormatInt(s.ID(), 10)
}

// compareIdentity orders by kind, then id. Shorter ids sort first so numeric session
// ids compare numerically.
func compareIdentity(a, b Item) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.ID), len(b.ID)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
