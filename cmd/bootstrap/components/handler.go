package components

import (
	"resource-booking/internal/handler"
	"resource-booking/internal/handler/api"
	"resource-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
		func(reservations *api.ReservationHandler, resources *api.ResourceHandler) handler.Handlers {
			return handler.Handlers{Reservations: reservations, Resources: resources}
		},
	),
	fx.Invoke(handler.NewRouter),
)
