package response

import (
	"time"

	"resource-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resourceId"`
	RequesterID     uuid.UUID `json:"requesterId"`
	CreatorID       uuid.UUID `json:"creatorId"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Status          string    `json:"status"`
	Participants    int       `json:"participants"`
	Note            *string   `json:"note,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		ResourceID:      v.ResourceID,
		RequesterID:     v.RequesterID,
		CreatorID:       v.CreatorID,
		Start:           v.Start,
		End:             v.End,
		Status:          v.Status,
		Participants:    v.Participants,
		Note:            v.Note,
		DurationMinutes: v.DurationMinutes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromReservationView(v)
	}
	return out
}
