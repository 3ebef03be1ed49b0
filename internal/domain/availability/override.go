package availability

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidOverrideWindow = errors.New("override end must be after start")
	ErrInvalidOverrideType   = errors.New("invalid override type")
	ErrInvalidRecurrence     = errors.New("invalid recurrence")
)

type OverrideType string

const (
	OverrideNormal      OverrideType = "normal"
	OverrideMaintenance OverrideType = "maintenance"
	OverrideBlocked     OverrideType = "blocked"
	OverrideOther       OverrideType = "other"
)

func (t OverrideType) IsValid() bool {
	switch t {
	case OverrideNormal, OverrideMaintenance, OverrideBlocked, OverrideOther:
		return true
	default:
		return false
	}
}

// Blocks reports whether an override of this type makes the day unavailable.
func (t OverrideType) Blocks() bool {
	return t != OverrideNormal
}

// Recurrence is stored but not expanded: a recurring override only covers
// its literal [start, end) window.
type Recurrence string

const (
	RecurrenceOneOff    Recurrence = "one_off"
	RecurrenceRecurring Recurrence = "recurring"
)

func (r Recurrence) IsValid() bool {
	return r == RecurrenceOneOff || r == RecurrenceRecurring
}

type Override struct {
	id         uuid.UUID
	resourceID uuid.UUID
	typ        OverrideType
	start      time.Time
	end        time.Time
	reason     string
	recurrence Recurrence
}

type OverrideParams struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Type       OverrideType
	Start      time.Time
	End        time.Time
	Reason     string
	Recurrence Recurrence
}

func NewOverride(p OverrideParams) (*Override, error) {
	if !p.Type.IsValid() {
		return nil, ErrInvalidOverrideType
	}
	if !p.End.After(p.Start) {
		return nil, ErrInvalidOverrideWindow
	}
	rec := p.Recurrence
	if rec == "" {
		rec = RecurrenceOneOff
	}
	if !rec.IsValid() {
		return nil, ErrInvalidRecurrence
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Override{
		id:         id,
		resourceID: p.ResourceID,
		typ:        p.Type,
		start:      p.Start,
		end:        p.End,
		reason:     strings.TrimSpace(p.Reason),
		recurrence: rec,
	}, nil
}

func (o *Override) ID() uuid.UUID          { return o.id }
func (o *Override) ResourceID() uuid.UUID  { return o.resourceID }
func (o *Override) Type() OverrideType     { return o.typ }
func (o *Override) Start() time.Time       { return o.start }
func (o *Override) End() time.Time         { return o.end }
func (o *Override) Reason() string         { return o.reason }
func (o *Override) Recurrence() Recurrence { return o.recurrence }

// Label is the reason when present, the type otherwise.
func (o *Override) Label() string {
	if o.reason != "" {
		return o.reason
	}
	return string(o.typ)
}
