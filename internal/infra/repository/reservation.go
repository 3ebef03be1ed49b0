package repository

import (
	"context"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/converter"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) (uuid.UUID, error)
	GetReservationForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Reservation, error)
	UpdateReservationStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateReservationStatusParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      pgquery.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db pgquery.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToCreateParams(res)

	resultID, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

// FindForUpdate row-locks the reservation until the transaction ends.
func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return converter.ReservationFromRow(row), nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res *reservation.Reservation) error {
	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, pgquery.UpdateReservationStatusParams{
		ID:        res.ID(),
		Status:    res.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
