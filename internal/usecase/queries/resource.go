package queries

import (
	"context"
	"log/slog"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/interval"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/domain/statistics"
	"resource-booking/internal/infra"
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HorizonOptions struct {
	DefaultDays int
	MaxDays     int
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 200
)

// ResourceListFilter is the caller-facing search. Empty strings, nil
// pointers and zero numbers fall back to no filtering, name ascending and
// the default page.
type ResourceListFilter struct {
	Type        string
	SiteID      *uuid.UUID
	Available   *bool
	MinCapacity int
	SortBy      string
	SortOrder   string
	Offset      int
	Limit       int
}

type ResourcePage struct {
	Items  []*ResourceView
	Total  int
	Offset int
	Limit  int
}

type ResourceQueries interface {
	List(ctx context.Context, filter ResourceListFilter) (*ResourcePage, error)
	GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	// GetAvailability projects days starting today; days <= 0 uses the default horizon.
	GetAvailability(ctx context.Context, id uuid.UUID, days int) (*AvailabilityView, error)
	GetStatistics(ctx context.Context, id uuid.UUID) (*StatisticsView, error)
}

type resourceQueriesImpl struct {
	uow       shared.UnitOfWork
	projector *availability.Projector
	clock     clock.Clock
	horizon   HorizonOptions
}

func NewResourceQueries(uow shared.UnitOfWork, projector *availability.Projector, clk clock.Clock, horizon HorizonOptions) ResourceQueries {
	if horizon.DefaultDays <= 0 {
		horizon.DefaultDays = availability.DefaultHorizonDays
	}
	if horizon.MaxDays < horizon.DefaultDays {
		horizon.MaxDays = horizon.DefaultDays
	}
	return &resourceQueriesImpl{
		uow:       uow,
		projector: projector,
		clock:     clk,
		horizon:   horizon,
	}
}

func (q *resourceQueriesImpl) List(ctx context.Context, filter ResourceListFilter) (*ResourcePage, error) {
	f, err := filter.toShared()
	if err != nil {
		return nil, err
	}

	var (
		items []*resource.Resource
		total int
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		items, total, err = reads.ListResources(ctx, f)
		return err
	})
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrResourceNotFound)
	}

	now := q.clock.Now()
	page := &ResourcePage{
		Items:  make([]*ResourceView, len(items)),
		Total:  total,
		Offset: f.Offset,
		Limit:  f.Limit,
	}
	for i, res := range items {
		page.Items[i] = NewResourceView(res, now)
	}
	return page, nil
}

func (f ResourceListFilter) toShared() (shared.ResourceFilter, error) {
	out := shared.ResourceFilter{
		SiteID:      f.SiteID,
		Active:      f.Available,
		MinCapacity: f.MinCapacity,
		SortBy:      shared.SortByName,
		Offset:      f.Offset,
		Limit:       f.Limit,
	}

	if f.Type != "" {
		t := resource.Type(f.Type)
		if !t.IsValid() {
			return out, errs.Wrapf(ErrInvalidListFilter, "unknown resource type %q", f.Type)
		}
		out.Type = &t
	}
	if f.SortBy != "" {
		out.SortBy = shared.ResourceSort(f.SortBy)
		if !out.SortBy.IsValid() {
			return out, errs.Wrapf(ErrInvalidListFilter, "cannot sort by %q", f.SortBy)
		}
	}
	switch f.SortOrder {
	case "", "asc":
	case "desc":
		out.Descending = true
	default:
		return out, errs.Wrapf(ErrInvalidListFilter, "unknown sort order %q", f.SortOrder)
	}
	if f.MinCapacity < 0 || f.Offset < 0 {
		return out, errs.Wrap(ErrInvalidListFilter, "minimum capacity and offset must not be negative")
	}
	if out.Limit == 0 {
		out.Limit = DefaultPageLimit
	}
	if out.Limit < 0 || out.Limit > MaxPageLimit {
		return out, errs.Wrapf(ErrInvalidListFilter, "limit must be between 1 and %d", MaxPageLimit)
	}
	return out, nil
}

func (q *resourceQueriesImpl) GetResource(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	res, err := q.uow.Reads().ResourceByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrResourceNotFound)
	}
	return NewResourceView(res, q.clock.Now()), nil
}

func (q *resourceQueriesImpl) GetAvailability(ctx context.Context, id uuid.UUID, days int) (*AvailabilityView, error) {
	if days <= 0 {
		days = q.horizon.DefaultDays
	}
	if days > q.horizon.MaxDays {
		return nil, errs.Wrapf(ErrInvalidHorizon, "days must be between 1 and %d", q.horizon.MaxDays)
	}

	now := q.clock.Now()
	from, _ := interval.DayBounds(now)
	to := from.AddDate(0, 0, days)

	var (
		res          *resource.Resource
		overrides    []*availability.Override
		reservations []*reservation.Reservation
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		if res, err = reads.ResourceByID(ctx, id); err != nil {
			return err
		}
		if overrides, err = reads.OverridesForResource(ctx, id, from, to); err != nil {
			return err
		}
		reservations, err = reads.ReservationsForResource(ctx, id, shared.ReservationFilter{
			Statuses: reservation.ActiveStatuses(),
			From:     from,
			To:       to,
		})
		return err
	})
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrResourceNotFound)
	}

	projected := q.projector.Project(res, overrides, reservations, days, now)
	view := &AvailabilityView{
		ResourceID: id,
		DailySlots: q.projector.DailySlots(),
		Days:       make([]AvailabilityDayView, len(projected)),
	}
	for i, d := range projected {
		view.Days[i] = newAvailabilityDayView(d)
	}
	return view, nil
}

func (q *resourceQueriesImpl) GetStatistics(ctx context.Context, id uuid.UUID) (*StatisticsView, error) {
	var reservations []*reservation.Reservation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.ResourceByID(ctx, id); err != nil {
			return err
		}
		var err error
		reservations, err = reads.ReservationsForResource(ctx, id, shared.ReservationFilter{})
		return err
	})
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrResourceNotFound)
	}

	snap := statistics.Compute(id, reservations, q.clock.Now())
	var view StatisticsView
	if err := copier.Copy(&view, &snap); err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return &view, nil
}

// mapReadErr turns a not-found repository error into notFound and marks
// everything else as a read failure.
func mapReadErr(ctx context.Context, err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	slog.ErrorContext(ctx, "read query failed", "error", err.Error())
	return errs.Mark(err, ErrReadFailed)
}
