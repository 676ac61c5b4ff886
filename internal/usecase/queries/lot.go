package queries

import (
	"context"

	"parking-api/internal/domain/lot"
	"parking-api/internal/infra"
)

type LotQueries interface {
	List(ctx context.Context) ([]*LotView, error)
	Get(ctx context.Context, id int64) (*LotView, error)
}

type LotReadStore interface {
	List(ctx context.Context) ([]*LotView, error)
	FindByID(ctx context.Context, id int64) (*LotView, error)
}

type lotQueriesImpl struct {
	readStore LotReadStore
}

func NewLotQueries(readStore LotReadStore) LotQueries {
	return &lotQueriesImpl{readStore: readStore}
}

func (q *lotQueriesImpl) List(ctx context.Context) ([]*LotView, error) {
	return q.readStore.List(ctx)
}

func (q *lotQueriesImpl) Get(ctx context.Context, id int64) (*LotView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, lot.ErrLotNotFound
		}
		return nil, err
	}
	return view, nil
}
