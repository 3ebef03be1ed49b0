package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const resourceColumns = `id, site_id, name, type, capacity, opening_time, closing_time, state, created_at, updated_at`

func scanResource(row pgx.Row) (Resource, error) {
	var i Resource
	err := row.Scan(
		&i.ID,
		&i.SiteID,
		&i.Name,
		&i.Type,
		&i.Capacity,
		&i.OpeningTime,
		&i.ClosingTime,
		&i.State,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getResourceByID = `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

func (q *Queries) GetResourceByID(ctx context.Context, db DBTX, id uuid.UUID) (Resource, error) {
	return scanResource(db.QueryRow(ctx, getResourceByID, id))
}

type CountResourcesParams struct {
	Type        pgtype.Text
	SiteID      pgtype.UUID
	Active      pgtype.Bool
	MinCapacity int32
}

// NULL parameters leave their criterion unset.
const resourceFilter = `
WHERE ($1::text IS NULL OR type = $1::text)
  AND ($2::uuid IS NULL OR site_id = $2::uuid)
  AND ($3::boolean IS NULL OR (state = 'active') = $3::boolean)
  AND capacity >= $4::integer
`

const countResources = `SELECT count(*) FROM resources` + resourceFilter

func (q *Queries) CountResources(ctx context.Context, db DBTX, arg CountResourcesParams) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countResources, arg.Type, arg.SiteID, arg.Active, arg.MinCapacity).Scan(&count)
	return count, err
}

type ListResourcesParams struct {
	CountResourcesParams
	SortBy     string
	Descending bool
	Offset     int32
	Limit      int32
}

// SortBy is one of name, capacity or type; id breaks ties so pages are stable.
const listResources = `SELECT ` + resourceColumns + ` FROM resources` + resourceFilter + `
ORDER BY
  CASE WHEN $5::text = 'name' AND NOT $6::boolean THEN name END ASC,
  CASE WHEN $5::text = 'name' AND $6::boolean THEN name END DESC,
  CASE WHEN $5::text = 'capacity' AND NOT $6::boolean THEN capacity END ASC,
  CASE WHEN $5::text = 'capacity' AND $6::boolean THEN capacity END DESC,
  CASE WHEN $5::text = 'type' AND NOT $6::boolean THEN type END ASC,
  CASE WHEN $5::text = 'type' AND $6::boolean THEN type END DESC,
  id
OFFSET $7 LIMIT $8
`

func (q *Queries) ListResources(ctx context.Context, db DBTX, arg ListResourcesParams) ([]Resource, error) {
	rows, err := db.Query(ctx, listResources,
		arg.Type, arg.SiteID, arg.Active, arg.MinCapacity,
		arg.SortBy, arg.Descending, arg.Offset, arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Resource
	for rows.Next() {
		i, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// pg_advisory_xact_lock is released on commit or rollback.
const lockResource = `
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) LockResource(ctx context.Context, db DBTX, resourceID uuid.UUID) error {
	_, err := db.Exec(ctx, lockResource, resourceID)
	return err
}
