//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parking-api/internal/domain/lot"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/usecase/commands"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateLot(t *testing.T) {
	ctx := context.Background()
	day := int64(2500)

	t.Run("stores an open lot", func(t *testing.T) {
		m := newTxMocks(t)
		var stored *lot.ParkingLot
		m.lots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlstore.DBTX, l *lot.ParkingLot) (int64, error) {
				stored = l
				return 11, nil
			})

		id, err := commands.NewLotCommands(m.uow, m.clock).CreateLot(ctx, commands.CreateLotRequest{
			Name:              "Harbor Lot",
			Capacity:          40,
			HourlyTariffCents: 300,
			DayTariffCents:    &day,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, lot.StatusOpen, stored.Attributes().Status)
		require.NotNil(t, stored.Tariff().DayTariff)
		assert.Equal(t, int64(2500), stored.Tariff().DayTariff.Cents())
		assert.Equal(t, testNow, stored.CreatedAt())
	})

	t.Run("invalid tariff never reaches the store", func(t *testing.T) {
		m := newTxMocks(t)

		_, err := commands.NewLotCommands(m.uow, m.clock).CreateLot(ctx, commands.CreateLotRequest{
			Name:     "Harbor Lot",
			Capacity: 40,
		})

		require.ErrorIs(t, err, lot.ErrInvalidTariff)
	})
}

func TestUpdateLot(t *testing.T) {
	ctx := context.Background()

	t.Run("nil fields keep stored values", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewLotBuilder().BuildDomain()
		hourly := int64(700)
		status := lot.StatusClosed
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(stored, nil)
		m.lots.EXPECT().Update(gomock.Any(), gomock.Any(), stored).Return(nil)

		err := commands.NewLotCommands(m.uow, m.clock).UpdateLot(ctx, 10, commands.UpdateLotRequest{
			HourlyTariffCents: &hourly,
			Status:            &status,
		})

		require.NoError(t, err)
		attrs := stored.Attributes()
		assert.Equal(t, "Central Garage", attrs.Name)
		assert.Equal(t, int32(100), attrs.Capacity)
		assert.Equal(t, int64(700), attrs.Hourly.Cents())
		require.NotNil(t, attrs.DayTariff)
		assert.Equal(t, int64(2500), attrs.DayTariff.Cents())
		assert.Equal(t, lot.StatusClosed, attrs.Status)
	})

	t.Run("unknown lot", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(404)).Return(nil, repoNotFound())

		err := commands.NewLotCommands(m.uow, m.clock).UpdateLot(ctx, 404, commands.UpdateLotRequest{})

		require.ErrorIs(t, err, lot.ErrLotNotFound)
	})

	t.Run("invalid capacity leaves the lot untouched", func(t *testing.T) {
		m := newTxMocks(t)
		stored := builder.NewLotBuilder().BuildDomain()
		capacity := int32(0)
		m.reads.EXPECT().LotByID(gomock.Any(), int64(10)).Return(stored, nil)

		err := commands.NewLotCommands(m.uow, m.clock).UpdateLot(ctx, 10, commands.UpdateLotRequest{Capacity: &capacity})

		require.ErrorIs(t, err, lot.ErrInvalidCapacity)
		assert.Equal(t, int32(100), stored.Attributes().Capacity)
	})
}
