package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id           uuid.UUID
	resourceID   uuid.UUID
	requesterID  uuid.UUID
	creatorID    uuid.UUID
	timeSlot     TimeSlot
	status       Status
	participants int
	note         Note
	createdAt    time.Time
	updatedAt    time.Time
}

type ReconstructParams struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	RequesterID  uuid.UUID
	CreatorID    uuid.UUID
	Start        time.Time
	End          time.Time
	Status       Status
	Participants int
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct rebuilds a persisted reservation without running creation rules.
func Reconstruct(p ReconstructParams) *Reservation {
	return &Reservation{
		id:           p.ID,
		resourceID:   p.ResourceID,
		requesterID:  p.RequesterID,
		creatorID:    p.CreatorID,
		timeSlot:     NewTimeSlot(p.Start, p.End),
		status:       p.Status,
		participants: p.Participants,
		note:         NewNote(p.Note),
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ResourceID() uuid.UUID  { return r.resourceID }
func (r *Reservation) RequesterID() uuid.UUID { return r.requesterID }
func (r *Reservation) CreatorID() uuid.UUID   { return r.creatorID }
func (r *Reservation) TimeSlot() TimeSlot     { return r.timeSlot }
func (r *Reservation) Start() time.Time       { return r.timeSlot.Start() }
func (r *Reservation) End() time.Time         { return r.timeSlot.End() }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Participants() int      { return r.participants }
func (r *Reservation) Note() Note             { return r.note }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) Duration() time.Duration {
	return r.timeSlot.Duration()
}

// IsInProgressAt reports a confirmed reservation whose window contains now,
// bounds included.
func (r *Reservation) IsInProgressAt(now time.Time) bool {
	return r.status == StatusConfirmed &&
		!now.Before(r.Start()) && !now.After(r.End())
}

func (r *Reservation) IsUpcomingAt(now time.Time) bool {
	return r.status.IsActive() && r.Start().After(now)
}

// IsOwnedBy reports whether userID requested or created the reservation.
func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && (r.requesterID == userID || r.creatorID == userID)
}

func (r *Reservation) clone() *Reservation {
	c := *r
	return &c
}
