package bootstrap

import (
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewClock,
	),
)

// NewClock reports time in the booking timezone so day boundaries follow
// the sites' local calendar.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}
