package queries

import (
	"context"
	"time"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationListFilter struct {
	Status string
	From   time.Time
	To     time.Time
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID, filter ReservationListFilter) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationQueries(uow shared.UnitOfWork, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	r, err := q.uow.Reads().ReservationByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrReservationNotFound)
	}
	return NewReservationView(r, q.clock.Now().Location()), nil
}

func (q *reservationQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID, filter ReservationListFilter) ([]*ReservationView, error) {
	f := shared.ReservationFilter{From: filter.From, To: filter.To}
	if filter.Status != "" {
		s := reservation.Status(filter.Status)
		if !s.IsValid() {
			return nil, errs.Wrapf(ErrInvalidStatusFilter, "unknown status %q", filter.Status)
		}
		f.Statuses = []reservation.Status{s}
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.To.After(f.From) {
		return nil, ErrInvalidWindow
	}

	var rows []*reservation.Reservation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if _, err := reads.ResourceByID(ctx, resourceID); err != nil {
			return err
		}
		var err error
		rows, err = reads.ReservationsForResource(ctx, resourceID, f)
		return err
	})
	if err != nil {
		return nil, mapReadErr(ctx, err, ErrResourceNotFound)
	}

	loc := q.clock.Now().Location()
	views := make([]*ReservationView, len(rows))
	for i, r := range rows {
		views[i] = NewReservationView(r, loc)
	}
	return views, nil
}
