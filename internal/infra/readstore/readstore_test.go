//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/infra/readstore"
	"resource-booking/internal/pkg/pgconv"
	"resource-booking/internal/usecase/shared"
	"resource-booking/tests/common/builder"
	readstoremock "resource-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// nil DBTX is fine: every query goes through the mock.
var noDB pgquery.DBTX

func TestResourceReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        func(b *builder.ResourceBuilder) pgquery.Resource
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: room with opening hours",
			row: func(b *builder.ResourceBuilder) pgquery.Resource {
				return b.WithHours(8*60, 18*60+30).BuildRow()
			},
		},
		{
			name:       "error: not found",
			row:        func(*builder.ResourceBuilder) pgquery.Resource { return pgquery.Resource{} },
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			row:        func(*builder.ResourceBuilder) pgquery.Resource { return pgquery.Resource{} },
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: corrupt row",
			row: func(b *builder.ResourceBuilder) pgquery.Resource {
				row := b.BuildRow()
				row.Type = "spaceship"
				return row
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
			store := readstore.NewResourceReadStore(mockQueries, noDB)

			b := builder.NewResourceBuilder()
			mockQueries.EXPECT().GetResourceByID(ctx, noDB, b.ID).Return(tc.row(b), tc.queryErr)

			got, err := store.FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, got.ID())
			assert.Equal(t, resource.TypeRoom, got.Type())
			require.NotNil(t, got.OpeningHours())
			assert.Equal(t, "18:30", got.OpeningHours().Close().String())
		})
	}
}

func TestResourceReadStore_List(t *testing.T) {
	ctx := context.Background()
	siteID := uuid.New()
	room := resource.TypeRoom
	active := true

	t.Run("success: filter forwarded as nullable params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
		store := readstore.NewResourceReadStore(mockQueries, noDB)

		where := pgquery.CountResourcesParams{
			Type:        pgtype.Text{String: "room", Valid: true},
			SiteID:      pgtype.UUID{Bytes: siteID, Valid: true},
			Active:      pgtype.Bool{Bool: true, Valid: true},
			MinCapacity: 4,
		}
		first := builder.NewResourceBuilder().BuildRow()
		second := builder.NewResourceBuilder().BuildRow()

		gomock.InOrder(
			mockQueries.EXPECT().CountResources(ctx, noDB, where).Return(int64(12), nil),
			mockQueries.EXPECT().ListResources(ctx, noDB, pgquery.ListResourcesParams{
				CountResourcesParams: where,
				SortBy:               "capacity",
				Descending:           true,
				Offset:               10,
				Limit:                2,
			}).Return([]pgquery.Resource{first, second}, nil),
		)

		got, total, err := store.List(ctx, shared.ResourceFilter{
			Type:        &room,
			SiteID:      &siteID,
			Active:      &active,
			MinCapacity: 4,
			SortBy:      shared.SortByCapacity,
			Descending:  true,
			Offset:      10,
			Limit:       2,
		})

		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID())
		assert.Equal(t, second.ID, got[1].ID())
	})

	t.Run("success: unset criteria are NULL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
		store := readstore.NewResourceReadStore(mockQueries, noDB)

		mockQueries.EXPECT().CountResources(ctx, noDB, pgquery.CountResourcesParams{}).Return(int64(0), nil)
		mockQueries.EXPECT().ListResources(ctx, noDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.ListResourcesParams) ([]pgquery.Resource, error) {
				assert.False(t, arg.Type.Valid)
				assert.False(t, arg.SiteID.Valid)
				assert.False(t, arg.Active.Valid)
				assert.Equal(t, "name", arg.SortBy)
				return nil, nil
			})

		got, total, err := store.List(ctx, shared.ResourceFilter{SortBy: shared.SortByName, Limit: 100})

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, got)
	})

	t.Run("error: count failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
		store := readstore.NewResourceReadStore(mockQueries, noDB)

		mockQueries.EXPECT().CountResources(ctx, noDB, gomock.Any()).Return(int64(0), errors.New("connection reset"))

		_, _, err := store.List(ctx, shared.ResourceFilter{SortBy: shared.SortByName, Limit: 100})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockResourceReadQueries(ctrl)
		store := readstore.NewResourceReadStore(mockQueries, noDB)

		bad := builder.NewResourceBuilder().BuildRow()
		bad.Capacity = 0
		mockQueries.EXPECT().CountResources(ctx, noDB, gomock.Any()).Return(int64(1), nil)
		mockQueries.EXPECT().ListResources(ctx, noDB, gomock.Any()).Return([]pgquery.Resource{bad}, nil)

		got, _, err := store.List(ctx, shared.ResourceFilter{SortBy: shared.SortByName, Limit: 100})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}

func TestReservationReadStore_FindByResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	from := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	t.Run("success: statuses and open upper bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, noDB)

		row := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = resourceID
			b.Note = ""
		}).BuildRow()
		mockQueries.EXPECT().ListReservationsByResource(ctx, noDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.ListReservationsByResourceParams) ([]pgquery.Reservation, error) {
				assert.Equal(t, resourceID, arg.ResourceID)
				assert.Equal(t, []string{"pending", "confirmed"}, arg.Statuses)
				assert.True(t, arg.From.Valid)
				assert.True(t, arg.From.Time.Equal(from))
				assert.False(t, arg.To.Valid)
				return []pgquery.Reservation{row}, nil
			})

		got, err := store.FindByResource(ctx, resourceID, shared.ReservationFilter{
			Statuses: reservation.ActiveStatuses(),
			From:     from,
		})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].ID())
		assert.True(t, got[0].Note().IsEmpty())
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
		store := readstore.NewReservationReadStore(mockQueries, noDB)

		mockQueries.EXPECT().ListReservationsByResource(ctx, noDB, gomock.Any()).Return(nil, errors.New("timeout"))

		got, err := store.FindByResource(ctx, resourceID, shared.ReservationFilter{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}

func TestReservationReadStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockReservationReadQueries(ctrl)
	store := readstore.NewReservationReadStore(mockQueries, noDB)

	id := uuid.New()
	mockQueries.EXPECT().GetReservationByID(ctx, noDB, id).Return(pgquery.Reservation{}, pgx.ErrNoRows)

	got, err := store.FindByID(ctx, id)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Nil(t, got)
}

func TestOverrideReadStore_FindByResource(t *testing.T) {
	ctx := context.Background()
	resourceID := uuid.New()
	from := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("success: rows mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOverrideReadQueries(ctrl)
		store := readstore.NewOverrideReadStore(mockQueries, noDB)

		mockQueries.EXPECT().ListOverridesByResource(ctx, noDB, pgquery.ListOverridesByResourceParams{
			ResourceID: resourceID,
			From:       pgconv.TimeToPgtype(from),
			To:         pgconv.TimeToPgtype(to),
		}).Return([]pgquery.AvailabilityOverride{{
			ID:         uuid.New(),
			ResourceID: resourceID,
			Type:       "maintenance",
			Recurrence: "one_off",
			StartTime:  pgconv.TimeToPgtype(from.Add(8 * time.Hour)),
			EndTime:    pgconv.TimeToPgtype(from.Add(12 * time.Hour)),
			Reason:     pgtype.Text{String: "Projector repair", Valid: true},
		}}, nil)

		got, err := store.FindByResource(ctx, resourceID, from, to)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, availability.OverrideMaintenance, got[0].Type())
		assert.Equal(t, "Projector repair", got[0].Label())
	})

	t.Run("error: corrupt row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOverrideReadQueries(ctrl)
		store := readstore.NewOverrideReadStore(mockQueries, noDB)

		mockQueries.EXPECT().ListOverridesByResource(ctx, noDB, gomock.Any()).Return([]pgquery.AvailabilityOverride{{
			ID:         uuid.New(),
			ResourceID: resourceID,
			Type:       "flood",
			StartTime:  pgconv.TimeToPgtype(from),
			EndTime:    pgconv.TimeToPgtype(to),
		}}, nil)

		got, err := store.FindByResource(ctx, resourceID, from, to)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, got)
	})
}
