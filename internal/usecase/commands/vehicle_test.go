//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/commands"
	"parking-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the normalized plate", func(t *testing.T) {
		m := newTxMocks(t)
		var stored *vehicle.Vehicle
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlstore.DBTX, v *vehicle.Vehicle) (int64, error) {
				stored = v
				return 21, nil
			})

		id, err := commands.NewVehicleCommands(m.uow, m.clock).RegisterVehicle(ctx, 1, commands.RegisterVehicleRequest{
			LicensePlate: "cd 456",
			Make:         "Honda",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
		assert.Equal(t, "CD456", stored.LicensePlate())
		assert.Equal(t, int64(1), stored.UserID())
	})

	t.Run("plate already registered", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().BuildStored(), nil)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), repoDuplicate())

		_, err := commands.NewVehicleCommands(m.uow, m.clock).RegisterVehicle(ctx, 1, commands.RegisterVehicleRequest{LicensePlate: "CD456"})

		require.ErrorIs(t, err, vehicle.ErrPlateTaken)
	})

	t.Run("inactive account", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserAccount(gomock.Any(), int64(1)).Return(builder.NewUserBuilder().AsInactive().BuildStored(), nil)

		_, err := commands.NewVehicleCommands(m.uow, m.clock).RegisterVehicle(ctx, 1, commands.RegisterVehicleRequest{LicensePlate: "CD456"})

		require.ErrorIs(t, err, errs.ErrAccountInactive)
	})

	t.Run("malformed plate", func(t *testing.T) {
		m := newTxMocks(t)

		_, err := commands.NewVehicleCommands(m.uow, m.clock).RegisterVehicle(ctx, 1, commands.RegisterVehicleRequest{LicensePlate: "!"})

		require.ErrorIs(t, err, vehicle.ErrInvalidPlate)
	})
}
