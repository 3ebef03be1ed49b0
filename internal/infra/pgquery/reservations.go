package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, resource_id, requester_id, creator_id, start_time, end_time, status, participants, note, created_at, updated_at`

func scanReservation(row pgx.Row) (Reservation, error) {
	var i Reservation
	err := row.Scan(
		&i.ID,
		&i.ResourceID,
		&i.RequesterID,
		&i.CreatorID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.Participants,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectReservations(rows pgx.Rows) ([]Reservation, error) {
	defer rows.Close()
	var items []Reservation
	for rows.Next() {
		i, err := scanReservation(rows)
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

const getReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) GetReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationByID, id))
}

const getReservationForUpdate = getReservationByID + ` FOR UPDATE`

func (q *Queries) GetReservationForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Reservation, error) {
	return scanReservation(db.QueryRow(ctx, getReservationForUpdate, id))
}

type ListReservationsByResourceParams struct {
	ResourceID uuid.UUID
	Statuses   []string
	From       pgtype.Timestamptz
	To         pgtype.Timestamptz
}

// Empty Statuses matches every status; an invalid From or To leaves that
// side of the window open. The window test is strict overlap.
const listReservationsByResource = `SELECT ` + reservationColumns + `
FROM reservations
WHERE resource_id = $1
  AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
  AND ($3::timestamptz IS NULL OR end_time > $3::timestamptz)
  AND ($4::timestamptz IS NULL OR start_time < $4::timestamptz)
ORDER BY start_time, id
`

func (q *Queries) ListReservationsByResource(ctx context.Context, db DBTX, arg ListReservationsByResourceParams) ([]Reservation, error) {
	statuses := arg.Statuses
	if statuses == nil {
		statuses = []string{}
	}
	rows, err := db.Query(ctx, listReservationsByResource, arg.ResourceID, statuses, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return collectReservations(rows)
}

type CreateReservationParams struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	RequesterID  uuid.UUID
	CreatorID    uuid.UUID
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	Participants int32
	Note         pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

const createReservation = `
INSERT INTO reservations (id, resource_id, requester_id, creator_id, start_time, end_time, status, participants, note, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.ResourceID,
		arg.RequesterID,
		arg.CreatorID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Participants,
		arg.Note,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

type UpdateReservationStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

const updateReservationStatus = `
UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1
`

func (q *Queries) UpdateReservationStatus(ctx context.Context, db DBTX, arg UpdateReservationStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateReservationStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
