// Package statistics derives usage figures for a resource from its
// reservations at a given instant.
package statistics

import (
	"math"
	"time"

	"resource-booking/internal/domain/interval"
	"resource-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	BookedHoursWindow = 30 * 24 * time.Hour
	OccupancyWindow   = 7 * 24 * time.Hour
)

type Snapshot struct {
	ResourceID             uuid.UUID
	ComputedAt             time.Time
	TotalReservations      int
	ActiveReservations     int
	UpcomingReservations   int
	OccupancyRate7d        float64
	BookedHours30d         float64
	AverageDurationMinutes float64
}

// Compute aggregates reservations for one resource at now. Reservations of
// other resources are not filtered out; callers pass the resource's set.
func Compute(resourceID uuid.UUID, reservations []*reservation.Reservation, now time.Time) Snapshot {
	s := Snapshot{
		ResourceID:        resourceID,
		ComputedAt:        now,
		TotalReservations: len(reservations),
	}

	pastStart := now.Add(-BookedHoursWindow)
	nextEnd := now.Add(OccupancyWindow)

	var (
		totalDuration time.Duration
		booked30d     time.Duration
		booked7d      time.Duration
	)
	for _, r := range reservations {
		totalDuration += r.Duration()

		if r.IsInProgressAt(now) {
			s.ActiveReservations++
		}
		if r.IsUpcomingAt(now) {
			s.UpcomingReservations++
		}

		switch r.Status() {
		case reservation.StatusConfirmed, reservation.StatusCompleted:
			booked30d += interval.OverlapDuration(r.Start(), r.End(), pastStart, now)
		}
		if r.IsActive() {
			booked7d += interval.OverlapDuration(r.Start(), r.End(), now, nextEnd)
		}
	}

	s.BookedHours30d = round2(booked30d.Hours())
	s.OccupancyRate7d = round2(booked7d.Hours() / OccupancyWindow.Hours() * 100)
	if len(reservations) > 0 {
		s.AverageDurationMinutes = round2(totalDuration.Minutes() / float64(len(reservations)))
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
