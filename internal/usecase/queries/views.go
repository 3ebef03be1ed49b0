package queries

import (
	"time"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resource_id"`
	RequesterID     uuid.UUID `json:"requester_id"`
	CreatorID       uuid.UUID `json:"creator_id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Status          string    `json:"status"`
	Participants    int       `json:"participants"`
	Note            *string   `json:"note,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ResourceView struct {
	ID          uuid.UUID `json:"id"`
	SiteID      uuid.UUID `json:"site_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	OpeningTime *string   `json:"opening_time,omitempty"`
	ClosingTime *string   `json:"closing_time,omitempty"`
	State       string    `json:"state"`
	OpenNow     bool      `json:"open_now"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AvailabilityDayView struct {
	Date      string  `json:"date"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
	FreeSlots int     `json:"free_slots"`
}

type AvailabilityView struct {
	ResourceID uuid.UUID             `json:"resource_id"`
	DailySlots int                   `json:"daily_slots"`
	Days       []AvailabilityDayView `json:"days"`
}

type StatisticsView struct {
	ResourceID             uuid.UUID `json:"resource_id"`
	ComputedAt             time.Time `json:"computed_at"`
	TotalReservations      int       `json:"total_reservations"`
	ActiveReservations     int       `json:"active_reservations"`
	UpcomingReservations   int       `json:"upcoming_reservations"`
	OccupancyRate7d        float64   `json:"occupancy_rate_7d"`
	BookedHours30d         float64   `json:"booked_hours_30d"`
	AverageDurationMinutes float64   `json:"average_duration_minutes"`
}

func NewReservationView(r *reservation.Reservation, loc *time.Location) *ReservationView {
	v := &ReservationView{
		ID:              r.ID(),
		ResourceID:      r.ResourceID(),
		RequesterID:     r.RequesterID(),
		CreatorID:       r.CreatorID(),
		Start:           inLocation(r.Start(), loc),
		End:             inLocation(r.End(), loc),
		Status:          r.Status().String(),
		Participants:    r.Participants(),
		DurationMinutes: int(r.Duration().Minutes()),
		CreatedAt:       inLocation(r.CreatedAt(), loc),
		UpdatedAt:       inLocation(r.UpdatedAt(), loc),
	}
	if !r.Note().IsEmpty() {
		note := r.Note().String()
		v.Note = &note
	}
	return v
}

func NewResourceView(r *resource.Resource, now time.Time) *ResourceView {
	v := &ResourceView{
		ID:        r.ID(),
		SiteID:    r.SiteID(),
		Name:      r.Name(),
		Type:      r.Type().String(),
		Capacity:  r.Capacity(),
		State:     r.State().String(),
		OpenNow:   r.IsActive() && resource.IsOpenAt(r, now),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
	if h := r.OpeningHours(); h != nil {
		open, closing := h.Open().String(), h.Close().String()
		v.OpeningTime = &open
		v.ClosingTime = &closing
	}
	return v
}

func newAvailabilityDayView(d availability.Day) AvailabilityDayView {
	v := AvailabilityDayView{
		Date:      d.Date.Format(dateLayout),
		Available: d.Available,
		FreeSlots: d.FreeSlots,
	}
	if d.Reason != "" {
		reason := d.Reason
		v.Reason = &reason
	}
	return v
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil || t.IsZero() {
		return t
	}
	return t.In(loc)
}
