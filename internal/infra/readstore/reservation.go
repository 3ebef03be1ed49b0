package readstore

import (
	"context"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/converter"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"
	"resource-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Reservation, error)
	ListReservationsByResource(ctx context.Context, db pgquery.DBTX, arg pgquery.ListReservationsByResourceParams) ([]pgquery.Reservation, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      pgquery.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db pgquery.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationReadStore) FindByResource(ctx context.Context, resourceID uuid.UUID, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	statuses := make([]string, len(filter.Statuses))
	for i, s := range filter.Statuses {
		statuses[i] = s.String()
	}

	rows, err := r.queries.ListReservationsByResource(ctx, r.db, pgquery.ListReservationsByResourceParams{
		ResourceID: resourceID,
		Statuses:   statuses,
		From:       pgconv.OptionalTimeToPgtype(filter.From),
		To:         pgconv.OptionalTimeToPgtype(filter.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by resource", err)
	}
	return converter.ReservationsFromRows(rows), nil
}
