package converter

import (
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"
)

func ReservationFromRow(row pgquery.Reservation) *reservation.Reservation {
	return reservation.Reconstruct(reservation.ReconstructParams{
		ID:           row.ID,
		ResourceID:   row.ResourceID,
		RequesterID:  row.RequesterID,
		CreatorID:    row.CreatorID,
		Start:        pgconv.TimeFromPgtype(row.StartTime),
		End:          pgconv.TimeFromPgtype(row.EndTime),
		Status:       reservation.Status(row.Status),
		Participants: int(row.Participants),
		Note:         pgconv.StringFromPgtype(row.Note),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func ReservationsFromRows(rows []pgquery.Reservation) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		out[i] = ReservationFromRow(row)
	}
	return out
}

func ReservationToCreateParams(r *reservation.Reservation) pgquery.CreateReservationParams {
	return pgquery.CreateReservationParams{
		ID:           r.ID(),
		ResourceID:   r.ResourceID(),
		RequesterID:  r.RequesterID(),
		CreatorID:    r.CreatorID(),
		StartTime:    pgconv.TimeToPgtype(r.Start()),
		EndTime:      pgconv.TimeToPgtype(r.End()),
		Status:       r.Status().String(),
		Participants: int32(r.Participants()), // #nosec G115 -- bounded by resource capacity
		Note:         pgconv.NonEmptyStringToPgtype(r.Note().String()),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
