package readstore

import (
	"context"

	"resource-booking/internal/domain/resource"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/converter"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/pkg/pgconv"
	"resource-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceReadQueries interface {
	GetResourceByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Resource, error)
	ListResources(ctx context.Context, db pgquery.DBTX, arg pgquery.ListResourcesParams) ([]pgquery.Resource, error)
	CountResources(ctx context.Context, db pgquery.DBTX, arg pgquery.CountResourcesParams) (int64, error)
}

type ResourceReadStore struct {
	queries ResourceReadQueries
	db      pgquery.DBTX
}

func NewResourceReadStore(queries ResourceReadQueries, db pgquery.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row, err := r.queries.GetResourceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	res, err := converter.ResourceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load resource", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ResourceReadStore) List(ctx context.Context, filter shared.ResourceFilter) ([]*resource.Resource, int, error) {
	where := pgquery.CountResourcesParams{
		SiteID:      pgconv.UUIDPtrToPgtype(filter.SiteID),
		Active:      pgconv.BoolPtrToPgtype(filter.Active),
		MinCapacity: int32(filter.MinCapacity),
	}
	if filter.Type != nil {
		where.Type = pgconv.StringToPgtype(filter.Type.String())
	}

	total, err := r.queries.CountResources(ctx, r.db, where)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count resources", err)
	}

	rows, err := r.queries.ListResources(ctx, r.db, pgquery.ListResourcesParams{
		CountResourcesParams: where,
		SortBy:               string(filter.SortBy),
		Descending:           filter.Descending,
		Offset:               int32(filter.Offset),
		Limit:                int32(filter.Limit),
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list resources", err)
	}

	items := make([]*resource.Resource, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ResourceFromRow(row)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to load resource", err, infra.KindDBFailure)
		}
		items = append(items, res)
	}
	return items, int(total), nil
}
