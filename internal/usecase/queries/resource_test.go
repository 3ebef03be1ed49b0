//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resource-booking/internal/domain/availability"
	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/domain/resource"
	"resource-booking/internal/domain/statistics"
	"resource-booking/internal/infra"
	"resource-booking/internal/pkg/clock"
	"resource-booking/internal/pkg/errs"
	"resource-booking/internal/usecase/queries"
	"resource-booking/internal/usecase/shared"
	"resource-booking/tests/common/builder"
	sharedmock "resource-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2030, time.January, 7, 8, 0, 0, 0, time.UTC)

type fixture struct {
	uow   *sharedmock.MockUnitOfWork
	reads *sharedmock.MockReads
	clock *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		reads: sharedmock.NewMockReads(ctrl),
		clock: clock.NewMockClock(now),
	}
	f.uow.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Reads) error) error {
			return fn(ctx, f.reads)
		}).AnyTimes()
	return f
}

func (f *fixture) resourceQueries() queries.ResourceQueries {
	return queries.NewResourceQueries(f.uow, availability.NewProjector(10), f.clock, queries.HorizonOptions{
		DefaultDays: 7,
		MaxDays:     31,
	})
}

func notFound() error {
	return infra.WrapRepoErr("not found", pgx.ErrNoRows, infra.KindNotFound)
}

func mustResource(t *testing.T, b *builder.ResourceBuilder) *resource.Resource {
	t.Helper()
	res, err := b.BuildDomain()
	require.NoError(t, err)
	return res
}

// =============================================================================
// GetResource Tests
// =============================================================================

func TestResourceQueries_GetResource(t *testing.T) {
	ctx := context.Background()

	t.Run("success: open room reports open now", func(t *testing.T) {
		f := newFixture(t)
		room := mustResource(t, builder.NewResourceBuilder().WithHours(7*60, 19*60))
		f.reads.EXPECT().ResourceByID(gomock.Any(), room.ID()).Return(room, nil)

		got, err := f.resourceQueries().GetResource(ctx, room.ID())

		require.NoError(t, err)
		assert.Equal(t, "Salle Lavoisier", got.Name)
		assert.Equal(t, "room", got.Type)
		assert.True(t, got.OpenNow)
		require.NotNil(t, got.OpeningTime)
		assert.Equal(t, "07:00", *got.OpeningTime)
	})

	t.Run("success: resource under maintenance is never open", func(t *testing.T) {
		f := newFixture(t)
		car := mustResource(t, builder.NewResourceBuilder().With(func(b *builder.ResourceBuilder) {
			b.Type = resource.TypeVehicle
			b.State = resource.StateMaintenance
		}))
		f.reads.EXPECT().ResourceByID(gomock.Any(), car.ID()).Return(car, nil)

		got, err := f.resourceQueries().GetResource(ctx, car.ID())

		require.NoError(t, err)
		assert.False(t, got.OpenNow)
		assert.Equal(t, "maintenance", got.State)
	})

	t.Run("error: resource not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ResourceByID(gomock.Any(), id).Return(nil, notFound())

		got, err := f.resourceQueries().GetResource(ctx, id)

		assert.True(t, errs.Is(err, queries.ErrResourceNotFound), "got %v", err)
		assert.Nil(t, got)
	})

	t.Run("error: database failure", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ResourceByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("boom", errors.New("connection refused")))

		_, err := f.resourceQueries().GetResource(ctx, id)

		assert.True(t, errs.Is(err, queries.ErrReadFailed), "got %v", err)
	})
}

// =============================================================================
// List Tests
// =============================================================================

func TestResourceQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success: defaults sort by name on the first page", func(t *testing.T) {
		f := newFixture(t)
		room := mustResource(t, builder.NewResourceBuilder().WithHours(7*60, 19*60))
		f.reads.EXPECT().
			ListResources(gomock.Any(), shared.ResourceFilter{SortBy: shared.SortByName, Limit: queries.DefaultPageLimit}).
			Return([]*resource.Resource{room}, 1, nil)

		got, err := f.resourceQueries().List(ctx, queries.ResourceListFilter{})

		require.NoError(t, err)
		assert.Equal(t, 1, got.Total)
		assert.Equal(t, 0, got.Offset)
		assert.Equal(t, queries.DefaultPageLimit, got.Limit)
		require.Len(t, got.Items, 1)
		assert.Equal(t, room.ID(), got.Items[0].ID)
		assert.True(t, got.Items[0].OpenNow)
	})

	t.Run("success: criteria and descending sort are forwarded", func(t *testing.T) {
		f := newFixture(t)
		siteID := uuid.New()
		available := false
		vehicle := resource.TypeVehicle
		want := shared.ResourceFilter{
			Type:        &vehicle,
			SiteID:      &siteID,
			Active:      &available,
			MinCapacity: 5,
			SortBy:      shared.SortByCapacity,
			Descending:  true,
			Offset:      10,
			Limit:       5,
		}
		f.reads.EXPECT().ListResources(gomock.Any(), want).Return([]*resource.Resource{}, 12, nil)

		got, err := f.resourceQueries().List(ctx, queries.ResourceListFilter{
			Type:        "vehicle",
			SiteID:      &siteID,
			Available:   &available,
			MinCapacity: 5,
			SortBy:      "capacity",
			SortOrder:   "desc",
			Offset:      10,
			Limit:       5,
		})

		require.NoError(t, err)
		assert.Equal(t, 12, got.Total)
		assert.Equal(t, 10, got.Offset)
		assert.Equal(t, 5, got.Limit)
		assert.Empty(t, got.Items)
	})

	invalid := []struct {
		name   string
		filter queries.ResourceListFilter
	}{
		{name: "unknown type", filter: queries.ResourceListFilter{Type: "boat"}},
		{name: "unknown sort key", filter: queries.ResourceListFilter{SortBy: "created_at"}},
		{name: "unknown sort order", filter: queries.ResourceListFilter{SortOrder: "up"}},
		{name: "negative capacity", filter: queries.ResourceListFilter{MinCapacity: -1}},
		{name: "negative offset", filter: queries.ResourceListFilter{Offset: -1}},
		{name: "limit above maximum", filter: queries.ResourceListFilter{Limit: queries.MaxPageLimit + 1}},
		{name: "negative limit", filter: queries.ResourceListFilter{Limit: -1}},
	}
	for _, tt := range invalid {
		t.Run("error: "+tt.name, func(t *testing.T) {
			f := newFixture(t)

			got, err := f.resourceQueries().List(ctx, tt.filter)

			assert.True(t, errs.Is(err, queries.ErrInvalidListFilter), "got %v", err)
			assert.Nil(t, got)
		})
	}

	t.Run("error: database failure", func(t *testing.T) {
		f := newFixture(t)
		f.reads.EXPECT().ListResources(gomock.Any(), gomock.Any()).
			Return(nil, 0, infra.WrapRepoErr("boom", errors.New("connection refused")))

		got, err := f.resourceQueries().List(ctx, queries.ResourceListFilter{})

		assert.True(t, errs.Is(err, queries.ErrReadFailed), "got %v", err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// GetAvailability Tests
// =============================================================================

func TestResourceQueries_GetAvailability(t *testing.T) {
	ctx := context.Background()
	dayStart := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	t.Run("success: booked hours reduce free slots", func(t *testing.T) {
		f := newFixture(t)
		room := mustResource(t, builder.NewResourceBuilder())
		booked := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ResourceID = room.ID()
			b.Status = reservation.StatusConfirmed
		}).BuildDomain()

		f.reads.EXPECT().ResourceByID(gomock.Any(), room.ID()).Return(room, nil)
		f.reads.EXPECT().OverridesForResource(gomock.Any(), room.ID(), dayStart, dayStart.AddDate(0, 0, 3)).Return(nil, nil)
		f.reads.EXPECT().ReservationsForResource(gomock.Any(), room.ID(), shared.ReservationFilter{
			Statuses: reservation.ActiveStatuses(),
			From:     dayStart,
			To:       dayStart.AddDate(0, 0, 3),
		}).Return([]*reservation.Reservation{booked}, nil)

		got, err := f.resourceQueries().GetAvailability(ctx, room.ID(), 3)

		require.NoError(t, err)
		want := &queries.AvailabilityView{
			ResourceID: room.ID(),
			DailySlots: 10,
			Days: []queries.AvailabilityDayView{
				{Date: "2030-01-07", Available: true, FreeSlots: 9},
				{Date: "2030-01-08", Available: true, FreeSlots: 10},
				{Date: "2030-01-09", Available: true, FreeSlots: 10},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: zero days uses the default horizon", func(t *testing.T) {
		f := newFixture(t)
		room := mustResource(t, builder.NewResourceBuilder())
		f.reads.EXPECT().ResourceByID(gomock.Any(), room.ID()).Return(room, nil)
		f.reads.EXPECT().OverridesForResource(gomock.Any(), room.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().ReservationsForResource(gomock.Any(), room.ID(), gomock.Any()).Return(nil, nil)

		got, err := f.resourceQueries().GetAvailability(ctx, room.ID(), 0)

		require.NoError(t, err)
		assert.Len(t, got.Days, 7)
	})

	t.Run("error: horizon beyond maximum", func(t *testing.T) {
		f := newFixture(t)

		got, err := f.resourceQueries().GetAvailability(ctx, uuid.New(), 32)

		assert.True(t, errs.Is(err, queries.ErrInvalidHorizon), "got %v", err)
		assert.Nil(t, got)
	})

	t.Run("error: resource not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ResourceByID(gomock.Any(), id).Return(nil, notFound())

		_, err := f.resourceQueries().GetAvailability(ctx, id, 3)

		assert.True(t, errs.Is(err, queries.ErrResourceNotFound), "got %v", err)
	})
}

// =============================================================================
// GetStatistics Tests
// =============================================================================

func TestResourceQueries_GetStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("success: snapshot copied into view", func(t *testing.T) {
		f := newFixture(t)
		room := mustResource(t, builder.NewResourceBuilder())
		rows := []*reservation.Reservation{
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ResourceID = room.ID()
				b.Status = reservation.StatusConfirmed
			}).BuildDomain(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.ResourceID = room.ID()
				b.Start = now.Add(-72 * time.Hour)
				b.End = b.Start.Add(time.Hour)
				b.Status = reservation.StatusCompleted
			}).BuildDomain(),
		}
		f.reads.EXPECT().ResourceByID(gomock.Any(), room.ID()).Return(room, nil)
		f.reads.EXPECT().ReservationsForResource(gomock.Any(), room.ID(), shared.ReservationFilter{}).Return(rows, nil)

		got, err := f.resourceQueries().GetStatistics(ctx, room.ID())

		require.NoError(t, err)
		snap := statistics.Compute(room.ID(), rows, now)
		want := &queries.StatisticsView{
			ResourceID:             snap.ResourceID,
			ComputedAt:             snap.ComputedAt,
			TotalReservations:      snap.TotalReservations,
			ActiveReservations:     snap.ActiveReservations,
			UpcomingReservations:   snap.UpcomingReservations,
			OccupancyRate7d:        snap.OccupancyRate7d,
			BookedHours30d:         snap.BookedHours30d,
			AverageDurationMinutes: snap.AverageDurationMinutes,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("statistics mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 2, got.TotalReservations)
		assert.Equal(t, 1, got.UpcomingReservations)
	})

	t.Run("error: resource not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ResourceByID(gomock.Any(), id).Return(nil, notFound())

		got, err := f.resourceQueries().GetStatistics(ctx, id)

		assert.True(t, errs.Is(err, queries.ErrResourceNotFound), "got %v", err)
		assert.Nil(t, got)
	})
}
