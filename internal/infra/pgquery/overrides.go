package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListOverridesByResourceParams struct {
	ResourceID uuid.UUID
	From       pgtype.Timestamptz
	To         pgtype.Timestamptz
}

const listOverridesByResource = `
SELECT id, resource_id, type, start_time, end_time, reason, recurrence
FROM availability_overrides
WHERE resource_id = $1
  AND end_time > $2
  AND start_time < $3
ORDER BY start_time, id
`

func (q *Queries) ListOverridesByResource(ctx context.Context, db DBTX, arg ListOverridesByResourceParams) ([]AvailabilityOverride, error) {
	rows, err := db.Query(ctx, listOverridesByResource, arg.ResourceID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AvailabilityOverride
	for rows.Next() {
		var i AvailabilityOverride
		if err := rows.Scan(
			&i.ID,
			&i.ResourceID,
			&i.Type,
			&i.StartTime,
			&i.EndTime,
			&i.Reason,
			&i.Recurrence,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
