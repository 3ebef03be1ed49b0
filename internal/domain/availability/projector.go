// Package availability projects the per-day availability of a resource from
// its state, its overrides and its active reservations.
package availability

import (
	"math"
	"strings"
	"time"

	"resource-booking/internal/domain/interval"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"
)

const (
	DefaultHorizonDays = 7
	DefaultDailySlots  = 10
)

type Day struct {
	Date      time.Time
	Available bool
	Reason    string
	FreeSlots int
}

type Projector struct {
	dailySlots int
}

// NewProjector returns a projector counting dailySlots hourly slots per day.
// Non-positive values fall back to DefaultDailySlots.
func NewProjector(dailySlots int) *Projector {
	if dailySlots <= 0 {
		dailySlots = DefaultDailySlots
	}
	return &Projector{dailySlots: dailySlots}
}

func (p *Projector) DailySlots() int {
	return p.dailySlots
}

// Project returns one Day per offset in [0, horizonDays), starting with the
// calendar day that contains now. Days are computed in now's location.
func (p *Projector) Project(
	res *resource.Resource,
	overrides []*Override,
	reservations []*reservation.Reservation,
	horizonDays int,
	now time.Time,
) []Day {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	days := make([]Day, 0, horizonDays)
	first, _ := interval.DayBounds(now)
	for offset := 0; offset < horizonDays; offset++ {
		start, end := interval.DayBounds(first.AddDate(0, 0, offset))
		days = append(days, p.projectDay(res, overrides, reservations, start, end))
	}
	return days
}

func (p *Projector) projectDay(
	res *resource.Resource,
	overrides []*Override,
	reservations []*reservation.Reservation,
	dayStart, dayEnd time.Time,
) Day {
	if !res.IsActive() {
		return Day{Date: dayStart, Reason: res.State().String()}
	}

	var reasons []string
	for _, o := range overrides {
		if !o.Type().Blocks() {
			continue
		}
		if interval.Overlaps(o.Start(), o.End(), dayStart, dayEnd) {
			reasons = append(reasons, o.Label())
		}
	}
	if len(reasons) > 0 {
		return Day{Date: dayStart, Reason: strings.Join(reasons, ", ")}
	}

	var occupied time.Duration
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		occupied += interval.OverlapDuration(r.Start(), r.End(), dayStart, dayEnd)
	}
	free := p.dailySlots - int(math.Floor(occupied.Hours()))
	if free < 0 {
		free = 0
	}
	return Day{Date: dayStart, Available: free > 0, FreeSlots: free}
}
