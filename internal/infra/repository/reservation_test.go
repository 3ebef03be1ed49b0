//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resource-booking/internal/domain/reservation"
	"resource-booking/internal/infra"
	"resource-booking/internal/infra/pgquery"
	"resource-booking/internal/infra/repository"
	"resource-booking/tests/common/builder"
	repositorymock "resource-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Reservation Tests
// =============================================================================

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: reservation created",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, db pgquery.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateReservationParams) (uuid.UUID, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, int32(res.Participants()), arg.Participants)
						return arg.ID, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db pgquery.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(uuid.Nil, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: exclusion constraint violated",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db pgquery.DBTX) {
				excl := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(uuid.Nil, excl)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: unknown resource",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db pgquery.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"}
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			domainReservation := builder.NewReservationBuilder().BuildDomain()
			tc.setupMock(mockQueries, domainReservation, mockDB)

			id, err := repo.Create(ctx, domainReservation)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domainReservation.ID(), id)
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestReservationRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row mapped to domain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = reservation.StatusConfirmed
		})
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, b.ID).Return(b.BuildRow(), nil)

		got, err := repo.FindForUpdate(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, reservation.StatusConfirmed, got.Status())
		assert.True(t, got.Start().Equal(b.Start))
		assert.Equal(t, b.Note, got.Note().String())
	})

	t.Run("error: reservation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewReservationRepository(mockQueries, mockDB)

		id := uuid.New()
		mockQueries.EXPECT().GetReservationForUpdate(ctx, mockDB, id).Return(pgquery.Reservation{}, pgx.ErrNoRows)

		got, err := repo.FindForUpdate(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestReservationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	updatedAt := time.Date(2030, time.January, 6, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationWriteQueries, *reservation.Reservation, pgquery.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: status updated",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, res *reservation.Reservation, db pgquery.DBTX) {
				mock.EXPECT().UpdateReservationStatus(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.UpdateReservationStatusParams) (int64, error) {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "confirmed", arg.Status)
						assert.True(t, arg.UpdatedAt.Time.Equal(updatedAt))
						return 1, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db pgquery.DBTX) {
				mock.EXPECT().UpdateReservationStatus(ctx, db, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: reservation not found",
			setupMock: func(mock *repositorymock.MockReservationWriteQueries, _ *reservation.Reservation, db pgquery.DBTX) {
				mock.EXPECT().UpdateReservationStatus(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockReservationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			domainReservation := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = reservation.StatusConfirmed
				b.UpdatedAt = updatedAt
			}).BuildDomain()
			tc.setupMock(mockQueries, domainReservation, mockDB)

			err := repo.UpdateStatus(ctx, domainReservation)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Notification Job Tests
// =============================================================================

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2030, time.January, 6, 10, 0, 0, 0, time.UTC)

	t.Run("success: job queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgquery.DBTX, arg pgquery.CreateNotificationJobParams) error {
				assert.Equal(t, "email", arg.Kind)
				assert.Equal(t, "reservation_created", arg.Topic)
				assert.Equal(t, "queued", arg.Status)
				assert.JSONEq(t, `{"id":1}`, string(arg.Payload))
				assert.True(t, arg.RunAt.Time.Equal(runAt))
				return nil
			})

		err := repo.CreateJob(ctx, "email", "reservation_created", []byte(`{"id":1}`), runAt)
		assert.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errors.New("database connection error"))

		err := repo.CreateJob(ctx, "email", "reservation_created", nil, runAt)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX satisfies pgquery.DBTX; queries are mocked one level up.
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the query mock instead.")
}
