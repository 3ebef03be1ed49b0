package pgquery

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Resource struct {
	ID          uuid.UUID
	SiteID      uuid.UUID
	Name        string
	Type        string
	Capacity    int32
	OpeningTime pgtype.Time
	ClosingTime pgtype.Time
	State       string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type Reservation struct {
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

type AvailabilityOverride struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	Type       string
	StartTime  pgtype.Timestamptz
	EndTime    pgtype.Timestamptz
	Reason     pgtype.Text
	Recurrence string
}
