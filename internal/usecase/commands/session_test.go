//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-api/internal/domain/lot"
	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/session"
	"parking-api/internal/domain/vehicle"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/shared"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSessionCommands(m *txMocks) commands.SessionCommands {
	return commands.NewSessionCommands(m.uow, pricing.NewDefaultCalculator(time.UTC), m.cache, m.clock, m.logger)
}

// expectParking primes the account, lot and vehicle lookups shared by start and stop.
func expectParking(m *txMocks) {
	m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
	m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
	m.reads.EXPECT().VehicleByPlateAndOwner(gomock.Any(), "AB-123", int64(1)).Return(builder.NewVehicleBuilder().BuildDomain(), nil)
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a session for a normalized plate", func(t *testing.T) {
		m := newTxMocks(t)
		var events []string
		m.expectEvents(&events)
		expectParking(m)
		m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(nil, repoNotFound())
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(30), nil)
		m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

		s, err := newSessionCommands(m).StartSession(ctx, 1, 10, " ab-123 ")

		require.NoError(t, err)
		assert.Equal(t, int64(30), s.ID())
		assert.Equal(t, "AB-123", s.LicensePlate())
		assert.Equal(t, testNow, s.Start())
		assert.Nil(t, s.End())
		assert.Nil(t, s.Cost())
		assert.Equal(t, session.StatusActive, s.Status())
		assert.Equal(t, []string{shared.EventSessionStarted}, events)
	})

	t.Run("second start for the same vehicle conflicts", func(t *testing.T) {
		m := newTxMocks(t)
		expectParking(m)
		m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(builder.NewSessionBuilder().BuildDomain(), nil)

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, session.ErrSessionAlreadyActive)
		kind, _ := errs.KindOf(err)
		assert.Equal(t, errs.KindConflict, kind)
	})

	t.Run("racing insert hits the open session index", func(t *testing.T) {
		m := newTxMocks(t)
		expectParking(m)
		m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(nil, repoNotFound())
		m.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), repoDuplicate())

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, session.ErrSessionAlreadyActive)
	})

	t.Run("inactive account", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().AsInactive().BuildStored(), nil)

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, errs.ErrAccountInactive)
	})

	t.Run("deleted account", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(nil, repoNotFound())

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("unknown lot", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(nil, repoNotFound())

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, lot.ErrLotNotFound)
	})

	t.Run("plate not registered to the caller", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(builder.NewLotBuilder().BuildDomain(), nil)
		m.reads.EXPECT().VehicleByPlateAndOwner(gomock.Any(), "ZZ-999", int64(1)).Return(nil, repoNotFound())

		_, err := newSessionCommands(m).StartSession(ctx, 1, 10, "zz-999")

		require.ErrorIs(t, err, vehicle.ErrVehicleNotFound)
	})
}

func TestStopSession(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		stayed    time.Duration
		wantCents int64
	}{
		{name: "four hours", stayed: 4 * time.Hour, wantCents: 2000},
		{name: "six hours hits the day cap", stayed: 6 * time.Hour, wantCents: 2500},
		{name: "inside grace window", stayed: 2 * time.Minute, wantCents: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			var events []string
			m.expectEvents(&events)
			expectParking(m)
			open := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
				b.Start = testNow.Add(-tc.stayed)
			}).BuildDomain()
			m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(open, nil)
			m.sessions.EXPECT().Stop(gomock.Any(), gomock.Any(), open).Return(nil)
			m.cache.EXPECT().InvalidateUser(gomock.Any(), int64(1)).Return(nil)

			result, err := newSessionCommands(m).StopSession(ctx, 1, 10, "AB-123")

			require.NoError(t, err)
			require.NotNil(t, result.Session.Cost())
			assert.Equal(t, tc.wantCents, result.Session.Cost().Cents())
			assert.Equal(t, tc.wantCents, result.Quote.Cost.Cents())
			require.NotNil(t, result.Session.End())
			assert.Equal(t, testNow, *result.Session.End())
			assert.Equal(t, session.StatusCompleted, result.Session.Status())
			assert.Equal(t, []string{shared.EventSessionStopped}, events)
		})
	}

	t.Run("nothing open", func(t *testing.T) {
		m := newTxMocks(t)
		expectParking(m)
		m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(nil, repoNotFound())

		_, err := newSessionCommands(m).StopSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, session.ErrNoActiveSession)
	})

	t.Run("stopped concurrently", func(t *testing.T) {
		m := newTxMocks(t)
		expectParking(m)
		open := builder.NewSessionBuilder().BuildDomain()
		m.reads.EXPECT().LatestOpenSessionByVehicle(gomock.Any(), int64(20)).Return(open, nil)
		m.sessions.EXPECT().Stop(gomock.Any(), gomock.Any(), open).Return(repoConflict())

		_, err := newSessionCommands(m).StopSession(ctx, 1, 10, "AB-123")

		require.ErrorIs(t, err, errs.ErrVersionConflict)
	})
}
