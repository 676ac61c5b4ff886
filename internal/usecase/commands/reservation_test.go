//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/reservation"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/shared"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReservationCommands(m *txMocks) commands.ReservationCommands {
	return commands.NewReservationCommands(m.uow, pricing.NewDefaultCalculator(time.UTC), m.cache, m.clock, m.logger)
}

func slotRequest(startHour, endHour int) commands.ReservationRequest {
	day := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	return commands.ReservationRequest{
		ParkingLotID: 10,
		VehicleID:    20,
		StartTime:    day.Add(time.Duration(startHour) * time.Hour),
		EndTime:      day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("prices the slot against the lot tariff", func(t *testing.T) {
		testCases := []struct {
			name      string
			startHour int
			endHour   int
			wantCents int64
		}{
			{name: "four hours at five per hour", startHour: 10, endHour: 14, wantCents: 2000},
			{name: "six hours capped by day tariff", startHour: 10, endHour: 16, wantCents: 2500},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := newTxMocks(t)
				var events []string
				m.expectEvents(&events)

				m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
				m.reads.EXPECT().VehicleByID(gomock.Any(), int64(20)).Return(builder.NewVehicleBuilder().BuildDomain(), nil)
				m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

				res, err := newReservationCommands(m).CreateReservation(ctx, 1, slotRequest(tc.startHour, tc.endHour))

				require.NoError(t, err)
				assert.Equal(t, tc.wantCents, res.Cost().Cents())
				assert.Equal(t, reservation.StatusConfirmed, res.Status())
				assert.Len(t, res.ID(), 32)
				assert.Equal(t, testNow, res.CreatedAt())
				assert.Equal(t, []string{shared.EventReservationCreated}, events)
			})
		}
	})

	t.Run("end before start is rejected before any lookup", func(t *testing.T) {
		m := newTxMocks(t)

		_, err := newReservationCommands(m).CreateReservation(ctx, 1, slotRequest(14, 10))

		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("missing lot", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(nil, repoNotFound())

		_, err := newReservationCommands(m).CreateReservation(ctx, 1, slotRequest(10, 12))

		require.ErrorIs(t, err, lot.ErrLotNotFound)
		kind, ok := errs.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, errs.KindNotFound, kind)
	})

	t.Run("vehicle of another user is reported missing", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
		m.reads.EXPECT().VehicleByID(gomock.Any(), int64(20)).
			Return(builder.NewVehicleBuilder().WithUserID(99).BuildDomain(), nil)

		_, err := newReservationCommands(m).CreateReservation(ctx, 1, slotRequest(10, 12))

		require.ErrorIs(t, err, vehicle.ErrVehicleNotFound)
	})

	t.Run("cache failure does not fail the request", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
		m.reads.EXPECT().VehicleByID(gomock.Any(), int64(20)).Return(builder.NewVehicleBuilder().BuildDomain(), nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(assert.AnError)

		res, err := newReservationCommands(m).CreateReservation(ctx, 1, slotRequest(10, 12))

		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestUpdateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("reprices and keeps paid status", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		stored := builder.NewReservationBuilder().WithStatus(reservation.StatusPaid).BuildDomain()

		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().WithoutDayTariff().BuildDomain(), nil)
		m.reads.EXPECT().VehicleByID(gomock.Any(), int64(20)).Return(builder.NewVehicleBuilder().BuildDomain(), nil)
		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		updated, err := newReservationCommands(m).UpdateReservation(ctx, 1, stored.ID(), slotRequest(8, 11))

		require.NoError(t, err)
		assert.Equal(t, int64(1500), updated.Cost().Cents())
		assert.Equal(t, reservation.StatusPaid, updated.Status())
		assert.Equal(t, []string{shared.EventReservationUpdated}, events)
	})

	t.Run("ownership is checked before the payload", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewReservationBuilder().WithUserID(2).BuildDomain()
		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)

		_, err := newReservationCommands(m).UpdateReservation(ctx, 1, stored.ID(), slotRequest(14, 10))

		require.ErrorIs(t, err, reservation.ErrNotOwner)
	})

	t.Run("concurrent write surfaces as version conflict", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewReservationBuilder().BuildDomain()
		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
		m.reads.EXPECT().VehicleByID(gomock.Any(), int64(20)).Return(builder.NewVehicleBuilder().BuildDomain(), nil)
		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(repoConflict())

		_, err := newReservationCommands(m).UpdateReservation(ctx, 1, stored.ID(), slotRequest(10, 12))

		require.ErrorIs(t, err, errs.ErrVersionConflict)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().ReservationByID(gomock.Any(), "missing").Return(nil, repoNotFound())

		_, err := newReservationCommands(m).UpdateReservation(ctx, 1, "missing", slotRequest(10, 12))

		require.ErrorIs(t, err, reservation.ErrReservationNotFound)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels and records the event", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		stored := builder.NewReservationBuilder().BuildDomain()

		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)
		m.reservations.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		err := newReservationCommands(m).CancelReservation(ctx, 1, stored.ID())

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled, stored.Status())
		assert.Equal(t, []string{shared.EventReservationCancelled}, events)
	})

	t.Run("second cancel writes nothing", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildDomain()
		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)

		err := newReservationCommands(m).CancelReservation(ctx, 1, stored.ID())

		require.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		kind, _ := errs.KindOf(err)
		assert.Equal(t, errs.KindState, kind)
	})

	t.Run("other user's reservation", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewReservationBuilder().WithUserID(2).BuildDomain()
		m.reads.EXPECT().ReservationByID(gomock.Any(), stored.ID()).Return(stored, nil)

		err := newReservationCommands(m).CancelReservation(ctx, 1, stored.ID())

		require.ErrorIs(t, err, reservation.ErrNotOwner)
	})
}
