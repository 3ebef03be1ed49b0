//go:build unit || e2e

package builder

import (
	"time"

	"resource-booking/internal/domain/reservation"
	reqdto "resource-booking/internal/handler/dto/request"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"
	"resource-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	RequesterID  uuid.UUID
	CreatorID    uuid.UUID
	Start        time.Time
	End          time.Time
	Status       reservation.Status
	Participants int
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, time.January, 7, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()
	return &ReservationBuilder{
		ID:           uuid.New(),
		ResourceID:   uuid.New(),
		RequesterID:  userID,
		CreatorID:    userID,
		Start:        start,
		End:          start.Add(90 * time.Minute),
		Status:       reservation.StatusPending,
		Participants: 2,
		Note:         "Team sync",
		CreatedAt:    start.Add(-48 * time.Hour),
		UpdatedAt:    start.Add(-48 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		RequesterID:  b.RequesterID,
		CreatorID:    b.CreatorID,
		Start:        b.Start,
		End:          b.End,
		Status:       b.Status,
		Participants: b.Participants,
		Note:         b.Note,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	})
}

func (b *ReservationBuilder) BuildRow() pgquery.Reservation {
	return pgquery.Reservation{
		ID:           b.ID,
		ResourceID:   b.ResourceID,
		RequesterID:  b.RequesterID,
		CreatorID:    b.CreatorID,
		StartTime:    pgconv.TimeToPgtype(b.Start),
		EndTime:      pgconv.TimeToPgtype(b.End),
		Status:       b.Status.String(),
		Participants: int32(b.Participants),
		Note:         pgconv.NonEmptyStringToPgtype(b.Note),
		CreatedAt:    pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ReservationBuilder) BuildProposal() reservation.Proposal {
	return reservation.Proposal{
		ResourceID:   b.ResourceID,
		RequesterID:  b.RequesterID,
		Start:        b.Start,
		End:          b.End,
		Participants: b.Participants,
		Note:         b.Note,
	}
}

func (b *ReservationBuilder) BuildCreateRequest() reqdto.CreateReservationRequest {
	participants := b.Participants
	note := b.Note
	return reqdto.CreateReservationRequest{
		ResourceID:   b.ResourceID,
		Start:        b.Start,
		End:          b.End,
		Participants: &participants,
		Note:         &note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return queries.NewReservationView(b.BuildDomain(), time.UTC)
}
