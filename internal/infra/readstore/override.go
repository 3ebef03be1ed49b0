package readstore

import (
	"context"
	"time"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/converter"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OverrideReadQueries interface {
	ListOverridesByResource(ctx context.Context, db pgquery.DBTX, arg pgquery.ListOverridesByResourceParams) ([]pgquery.AvailabilityOverride, error)
}

type OverrideReadStore struct {
	queries OverrideReadQueries
	db      pgquery.DBTX
}

func NewOverrideReadStore(queries OverrideReadQueries, db pgquery.DBTX) *OverrideReadStore {
	return &OverrideReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OverrideReadStore) FindByResource(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*availability.Override, error) {
	rows, err := r.queries.ListOverridesByResource(ctx, r.db, pgquery.ListOverridesByResourceParams{
		ResourceID: resourceID,
		From:       pgconv.TimeToPgtype(from),
		To:         pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability overrides", err)
	}

	out := make([]*availability.Override, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OverrideFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to load availability override", err, infra.KindDBFailure)
		}
		out = append(out, o)
	}
	return out, nil
}
