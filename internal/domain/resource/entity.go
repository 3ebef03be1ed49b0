package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName      = errors.New("resource name cannot be empty")
	ErrResourceNameTooShort   = errors.New("resource name must be at least 3 characters")
	ErrResourceNameTooLong    = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidResourceType    = errors.New("invalid resource type")
	ErrInvalidCapacity        = errors.New("capacity must be at least 1")
	ErrEmptyState             = errors.New("resource state cannot be empty")
	ErrInvalidTimeOfDay       = errors.New("invalid time of day")
	ErrOpeningAfterClosing    = errors.New("opening time must be before closing time")
	ErrOpeningHoursNotAllowed = errors.New("opening hours only apply to rooms")
)

const (
	MinResourceNameLength = 3
	MaxResourceNameLength = 255
)

type Resource struct {
	id           uuid.UUID
	siteID       uuid.UUID
	name         string
	typ          Type
	capacity     int
	openingHours *OpeningHours
	state        State
	createdAt    time.Time
	updatedAt    time.Time
}

type Params struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	Name         string
	Type         Type
	Capacity     int
	OpeningHours *OpeningHours
	State        State
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewResource(p Params) (*Resource, error) {
	if err := validateResourceName(p.Name); err != nil {
		return nil, err
	}
	if !p.Type.IsValid() {
		return nil, ErrInvalidResourceType
	}
	if p.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if p.OpeningHours != nil && !AppliesOpeningHours(p.Type) {
		return nil, ErrOpeningHoursNotAllowed
	}
	state := State(strings.TrimSpace(string(p.State)))
	if state == "" {
		return nil, ErrEmptyState
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Resource{
		id:           id,
		siteID:       p.SiteID,
		name:         strings.TrimSpace(p.Name),
		typ:          p.Type,
		capacity:     p.Capacity,
		openingHours: p.OpeningHours,
		state:        state,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len([]rune(name)) < MinResourceNameLength {
		return ErrResourceNameTooShort
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) IsActive() bool {
	return r.state.IsActive()
}

func (r *Resource) ID() uuid.UUID               { return r.id }
func (r *Resource) SiteID() uuid.UUID           { return r.siteID }
func (r *Resource) Name() string                { return r.name }
func (r *Resource) Type() Type                  { return r.typ }
func (r *Resource) Capacity() int               { return r.capacity }
func (r *Resource) OpeningHours() *OpeningHours { return r.openingHours }
func (r *Resource) State() State                { return r.state }
func (r *Resource) CreatedAt() time.Time        { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time        { return r.updatedAt }
