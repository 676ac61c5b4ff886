package queries

import "context"

type VehicleQueries interface {
	ListMine(ctx context.Context, userID int64) ([]*VehicleView, error)
}

type VehicleReadStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	readStore VehicleReadStore
}

func NewVehicleQueries(readStore VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{readStore: readStore}
}

func (q *vehicleQueriesImpl) ListMine(ctx context.Context, userID int64) ([]*VehicleView, error) {
	return q.readStore.ListByUser(ctx, userID)
}
