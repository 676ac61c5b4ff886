package components

import (
	"log/slog"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/pkg/clock"
	"parking-api/internal/pkg/config"
	"parking-api/internal/usecase"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/queries"
	"parking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(pricing.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewLotCommands,
		commands.NewVehicleCommands,
		commands.NewReservationCommands,
		commands.NewSessionCommands,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLotQueries,
		queries.NewVehicleQueries,
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewBillingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewPriceCalculator bills calendar days in the configured pricing zone.
func NewPriceCalculator(cfg config.Config) *pricing.DefaultCalculator {
	return pricing.NewDefaultCalculator(cfg.Pricing.Location())
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	cache shared.BillingCache,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, cache, clk, cfg.Idempotency.TTL, logger)
}
