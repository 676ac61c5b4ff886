package components

import (
	"parking-api/internal/infra/readstore"
	"parking-api/internal/infra/sqlstore"
	"parking-api/internal/infra/uow"
	"parking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Lot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LotReadQueries)),
		),
		fx.Annotate(
			readstore.NewLotReadStore,
			fx.As(new(queries.LotReadStore)),
		),
		// Vehicle
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VehicleReadQueries)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(fx.Self()),
			fx.As(new(queries.ReservationReadStore)),
		),
		// Session
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SessionReadQueries)),
		),
		readstore.NewSessionReadStore,
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentReadQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Billing
		fx.Annotate(
			readstore.NewBillingReadStore,
			fx.As(new(queries.BillingReadStore)),
		),
	),
)

// Repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}
