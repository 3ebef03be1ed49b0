package components

import (
	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/pkg/config"
	"resource-booking/internal/usecase/commands"
	"resource-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	reservation.NewValidator,
	func(cfg config.Config) *availability.Projector {
		return availability.NewProjector(cfg.Booking.DailySlots)
	},
	func(cfg config.Config) queries.HorizonOptions {
		return queries.HorizonOptions{
			DefaultDays: cfg.Booking.AvailabilityHorizonDays,
			MaxDays:     cfg.Booking.MaxHorizonDays,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewReservationQueries,
	),
)
