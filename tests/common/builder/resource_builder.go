//go:build unit || e2e

package builder

import (
	"time"

	"resource-booking/internal/domain/resource"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResourceBuilder struct {
	ID       uuid.UUID
	SiteID   uuid.UUID
	Name     string
	Type     resource.Type
	Capacity int
	// minutes since midnight, both nil for no opening hours
	OpenMinutes  *int
	CloseMinutes *int
	State        resource.State
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewResourceBuilder() *ResourceBuilder {
	now := time.Date(2029, time.December, 1, 0, 0, 0, 0, time.UTC)
	return &ResourceBuilder{
		ID:        uuid.New(),
		SiteID:    uuid.New(),
		Name:      "Salle Lavoisier",
		Type:      resource.TypeRoom,
		Capacity:  4,
		State:     resource.StateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ResourceBuilder) With(mutate func(*ResourceBuilder)) *ResourceBuilder {
	mutate(b)
	return b
}

func (b *ResourceBuilder) WithHours(openMinutes, closeMinutes int) *ResourceBuilder {
	b.OpenMinutes = &openMinutes
	b.CloseMinutes = &closeMinutes
	return b
}

func (b *ResourceBuilder) BuildDomain() (*resource.Resource, error) {
	var hours *resource.OpeningHours
	if b.OpenMinutes != nil && b.CloseMinutes != nil {
		open, err := resource.TimeOfDayFromMinutes(*b.OpenMinutes)
		if err != nil {
			return nil, err
		}
		closing, err := resource.TimeOfDayFromMinutes(*b.CloseMinutes)
		if err != nil {
			return nil, err
		}
		h, err := resource.NewOpeningHours(open, closing)
		if err != nil {
			return nil, err
		}
		hours = &h
	}
	return resource.NewResource(resource.Params{
		ID:           b.ID,
		SiteID:       b.SiteID,
		Name:         b.Name,
		Type:         b.Type,
		Capacity:     b.Capacity,
		OpeningHours: hours,
		State:        b.State,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	})
}

func (b *ResourceBuilder) BuildRow() pgquery.Resource {
	row := pgquery.Resource{
		ID:        b.ID,
		SiteID:    b.SiteID,
		Name:      b.Name,
		Type:      b.Type.String(),
		Capacity:  int32(b.Capacity),
		State:     b.State.String(),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt),
	}
	if b.OpenMinutes != nil {
		row.OpeningTime = pgconv.MinutesToPgtime(*b.OpenMinutes)
	}
	if b.CloseMinutes != nil {
		row.ClosingTime = pgconv.MinutesToPgtime(*b.CloseMinutes)
	}
	return row
}
