package request

import (
	"time"

	"resource-booking/internal/pkg/patch"
	"resource-booking/internal/usecase/commands"
	"resource-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const defaultParticipants = 1

type CreateReservationRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
	// Defaults to the authenticated user.
	RequesterID  *uuid.UUID `json:"requesterId,omitempty"`
	Start        time.Time  `json:"start" binding:"required"`
	End          time.Time  `json:"end" binding:"required"`
	Participants *int       `json:"participants,omitempty"`
	Note         *string    `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		ResourceID:   r.ResourceID,
		RequesterID:  patch.Coalesce(r.RequesterID, uuid.Nil),
		Start:        r.Start,
		End:          r.End,
		Participants: patch.Coalesce(r.Participants, defaultParticipants),
		Note:         patch.Coalesce(r.Note, ""),
	}
}

type AvailabilityQuery struct {
	Days int `form:"days" binding:"omitempty,min=1"`
}

type ReservationListQuery struct {
	Status string    `form:"status"`
	From   time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type ResourceListQuery struct {
	Type        string `form:"type" binding:"omitempty,oneof=room vehicle equipment"`
	SiteID      string `form:"siteId" binding:"omitempty,uuid"`
	Available   *bool  `form:"available"`
	MinCapacity int    `form:"minCapacity" binding:"omitempty,min=1"`
	SortBy      string `form:"sortBy" binding:"omitempty,oneof=name capacity type"`
	SortOrder   string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ResourceListQuery) ToFilter() queries.ResourceListFilter {
	f := queries.ResourceListFilter{
		Type:        q.Type,
		Available:   q.Available,
		MinCapacity: q.MinCapacity,
		SortBy:      q.SortBy,
		SortOrder:   q.SortOrder,
		Offset:      q.Offset,
		Limit:       q.Limit,
	}
	// already validated by the uuid binding rule
	if id, err := uuid.Parse(q.SiteID); err == nil {
		f.SiteID = &id
	}
	return f
}
