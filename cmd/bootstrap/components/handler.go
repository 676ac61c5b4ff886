package components

import (
	"parking-api/internal/handler"
	"parking-api/internal/handler/api"
	"parking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLotHandler,
		api.NewVehicleHandler,
		api.NewReservationHandler,
		api.NewSessionHandler,
		api.NewPaymentHandler,
		api.NewBillingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
