package converter

import (
	"resource-booking/internal/domain/availability"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/pkg/pgconv"
)

func OverrideFromRow(row pgquery.AvailabilityOverride) (*availability.Override, error) {
	o, err := availability.NewOverride(availability.OverrideParams{
		ID:         row.ID,
		ResourceID: row.ResourceID,
		Type:       availability.OverrideType(row.Type),
		Start:      pgconv.TimeFromPgtype(row.StartTime),
		End:        pgconv.TimeFromPgtype(row.EndTime),
		Reason:     pgconv.StringFromPgtype(row.Reason),
		Recurrence: availability.Recurrence(row.Recurrence),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "override %s", row.ID), ErrCorruptRow)
	}
	return o, nil
}
