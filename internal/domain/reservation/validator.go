package reservation

import (
	"time"

	"resource-booking/internal/domain/interval"
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/domain/user"
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MinDuration = 30 * time.Minute

// Proposal is a reservation request that has not been validated yet.
type Proposal struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	RequesterID  uuid.UUID
	Start        time.Time
	End          time.Time
	Participants int
	Note         string
}

type Validator struct {
	clock clock.Clock
}

func NewValidator(clk clock.Clock) *Validator {
	return &Validator{clock: clk}
}

func (v *Validator) Validate(p Proposal, res *resource.Resource, creator user.Actor, existing []*Reservation) (*Reservation, error) {
	return Validate(p, res, creator, existing, v.clock.Now())
}

// Validate checks a proposal against the creation rules in a fixed order and
// returns the first failure. existing must hold the reservations already
// stored for the same resource; only active ones are considered for
// conflicts. On success the returned reservation is pending.
func Validate(p Proposal, res *resource.Resource, creator user.Actor, existing []*Reservation, now time.Time) (*Reservation, error) {
	if err := checkPreconditions(p, res, creator, existing); err != nil {
		return nil, err
	}

	if !p.End.After(p.Start) {
		return nil, ErrInvalidWindow
	}

	d := p.End.Sub(p.Start)
	if d < MinDuration {
		return nil, newValidationError(KindTooShort, "reservation must last at least %d minutes", int(MinDuration.Minutes()))
	}
	if limit := resource.MaxDuration(res.Type()); d > limit {
		return nil, newValidationError(KindTooLong, "maximum duration for a %s is %d hours", res.Type(), int(limit.Hours()))
	}

	if !interval.MinuteIsQuarterAligned(p.Start) || !interval.MinuteIsQuarterAligned(p.End) {
		return nil, ErrNotQuarterAligned
	}

	if p.Start.Before(now) && !creator.IsAdmin() {
		return nil, ErrPastReservationForbidden
	}

	if p.Participants < 1 {
		return nil, ErrInvalidParticipants
	}
	if p.Participants > res.Capacity() {
		return nil, newValidationError(KindCapacityExceeded, "participant count %d exceeds capacity %d", p.Participants, res.Capacity())
	}

	if c := FindConflict(p.Start, p.End, existing); c != nil {
		return nil, newValidationError(KindSlotTaken, "time slot overlaps reservation %s", c.ID())
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	requester := p.RequesterID
	if requester == uuid.Nil {
		requester = creator.ID
	}

	return &Reservation{
		id:           id,
		resourceID:   res.ID(),
		requesterID:  requester,
		creatorID:    creator.ID,
		timeSlot:     NewTimeSlot(p.Start, p.End),
		status:       StatusPending,
		participants: p.Participants,
		note:         NewNote(p.Note),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// FindConflict returns the first active reservation whose window strictly
// overlaps [start, end), or nil.
func FindConflict(start, end time.Time, existing []*Reservation) *Reservation {
	for _, r := range existing {
		if !r.IsActive() {
			continue
		}
		if interval.Overlaps(start, end, r.Start(), r.End()) {
			return r
		}
	}
	return nil
}

func checkPreconditions(p Proposal, res *resource.Resource, creator user.Actor, existing []*Reservation) error {
	if res == nil {
		return errs.Wrap(ErrPrecondition, "resource is required")
	}
	if p.ResourceID != uuid.Nil && p.ResourceID != res.ID() {
		return errs.Wrapf(ErrPrecondition, "proposal targets resource %s, got %s", p.ResourceID, res.ID())
	}
	if creator.ID == uuid.Nil {
		return errs.Wrap(ErrPrecondition, "creator is required")
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return errs.Wrap(ErrPrecondition, "start and end are required")
	}
	for _, r := range existing {
		if r == nil {
			return errs.Wrap(ErrPrecondition, "nil reservation in existing set")
		}
		if r.ResourceID() != res.ID() {
			return errs.Wrapf(ErrPrecondition, "existing reservation %s belongs to another resource", r.ID())
		}
	}
	return nil
}
