package commands

import (
	"context"

	"parking-api/internal/domain/vehicle"
	"parking-api/internal/infra"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/usecase/shared"
)

type RegisterVehicleRequest struct {
	LicensePlate string
	Make         string
	Model        string
	Color        string
	Year         int32
}

type VehicleCommands interface {
	RegisterVehicle(ctx context.Context, userID int64, req RegisterVehicleRequest) (int64, error)
}

type vehicleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleCommands(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow, clock: clk}
}

func (c *vehicleCommandsImpl) RegisterVehicle(ctx context.Context, userID int64, req RegisterVehicleRequest) (int64, error) {
	details := vehicle.Details{
		Make:  req.Make,
		Model: req.Model,
		Color: req.Color,
		Year:  req.Year,
	}
	v, err := vehicle.NewVehicle(userID, req.LicensePlate, details, c.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := activeAccount(ctx, tx.Reads(), userID); err != nil {
			return err
		}
		created, err := tx.Vehicles().Create(ctx, tx.DB(), v)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return vehicle.ErrPlateTaken
			}
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
