package converter

import (
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/pkg/pgconv"
)

var ErrCorruptRow = errs.New("stored row violates domain invariants")

func ResourceFromRow(row pgquery.Resource) (*resource.Resource, error) {
	hours, err := openingHoursFromRow(row)
	if err != nil {
		return nil, err
	}
	r, err := resource.NewResource(resource.Params{
		ID:           row.ID,
		SiteID:       row.SiteID,
		Name:         row.Name,
		Type:         resource.Type(row.Type),
		Capacity:     int(row.Capacity),
		OpeningHours: hours,
		State:        resource.State(row.State),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "resource %s", row.ID), ErrCorruptRow)
	}
	return r, nil
}

func openingHoursFromRow(row pgquery.Resource) (*resource.OpeningHours, error) {
	openMin, okOpen := pgconv.MinutesFromPgtime(row.OpeningTime)
	closeMin, okClose := pgconv.MinutesFromPgtime(row.ClosingTime)
	if !okOpen || !okClose {
		return nil, nil
	}
	open, err := resource.TimeOfDayFromMinutes(openMin)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	closing, err := resource.TimeOfDayFromMinutes(closeMin)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	h, err := resource.NewOpeningHours(open, closing)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	return &h, nil
}
