package response

import (
	"time"

	"resource-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	SiteID      uuid.UUID `json:"siteId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Capacity    int       `json:"capacity"`
	OpeningTime *string   `json:"openingTime,omitempty"`
	ClosingTime *string   `json:"closingTime,omitempty"`
	State       string    `json:"state"`
	OpenNow     bool      `json:"openNow"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PageMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ResourceListResponse struct {
	Items []*ResourceResponse `json:"items"`
	Meta  PageMeta            `json:"meta"`
}

type AvailabilityDayResponse struct {
	Date      string  `json:"date"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason"`
	FreeSlots int     `json:"freeSlots"`
}

type AvailabilityResponse struct {
	ResourceID uuid.UUID                 `json:"resourceId"`
	DailySlots int                       `json:"dailySlots"`
	Days       []AvailabilityDayResponse `json:"days"`
}

type StatisticsResponse struct {
	ResourceID             uuid.UUID `json:"resourceId"`
	ComputedAt             time.Time `json:"computedAt"`
	TotalReservations      int       `json:"totalReservations"`
	ActiveReservations     int       `json:"activeReservations"`
	UpcomingReservations   int       `json:"upcomingReservations"`
	OccupancyRate7d        float64   `json:"occupancyRate7d"`
	BookedHours30d         float64   `json:"bookedHours30d"`
	AverageDurationMinutes float64   `json:"averageDurationMinutes"`
}

func FromResourceView(v *queries.ResourceView) (*ResourceResponse, error) {
	var out ResourceResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromResourcePage(p *queries.ResourcePage) (*ResourceListResponse, error) {
	out := &ResourceListResponse{Items: make([]*ResourceResponse, 0, len(p.Items))}
	if err := copier.Copy(&out.Meta, p); err != nil {
		return nil, err
	}
	for _, v := range p.Items {
		item, err := FromResourceView(v)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	var out AvailabilityResponse
	if err := copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if out.Days == nil {
		out.Days = []AvailabilityDayResponse{}
	}
	return &out, nil
}

func FromStatisticsView(v *queries.StatisticsView) (*StatisticsResponse, error) {
	var out StatisticsResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}
