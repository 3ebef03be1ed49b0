//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultSiteName = "Main Campus"

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, role, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

type ResourceFixture struct {
	Name     string
	Type     string
	Capacity int
	Opening  string
	Closing  string
	State    string
}

// CreateTestResource inserts a resource on the default site. Rooms get
// 08:00-18:00 hours unless the fixture says otherwise.
func CreateTestResource(t *testing.T, db DBLike, f ResourceFixture) uuid.UUID {
	t.Helper()

	if f.Type == "" {
		f.Type = "room"
	}
	if f.Capacity == 0 {
		f.Capacity = 8
	}
	if f.State == "" {
		f.State = "active"
	}
	if f.Type == "room" && f.Opening == "" {
		f.Opening, f.Closing = "08:00", "18:00"
	}

	var opening, closing *string
	if f.Opening != "" {
		opening, closing = &f.Opening, &f.Closing
	}

	ctx := context.Background()
	var siteID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM sites WHERE name = $1", DefaultSiteName).Scan(&siteID)
	require.NoError(t, err)

	resourceID := uuid.New()
	_, err = db.Exec(ctx, `
		INSERT INTO resources (id, site_id, name, type, capacity, opening_time, closing_time, state)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8)`,
		resourceID, siteID, f.Name, f.Type, f.Capacity, opening, closing, f.State)
	require.NoError(t, err)

	return resourceID
}

func CreateTestOverride(t *testing.T, db DBLike, resourceID uuid.UUID, kind string, start, end time.Time) uuid.UUID {
	t.Helper()

	overrideID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO availability_overrides (id, resource_id, type, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)`,
		overrideID, resourceID, kind, start, end)
	require.NoError(t, err)

	return overrideID
}

// CreateTestReservation writes a row directly, bypassing validation, so tests
// can set up history in the past.
func CreateTestReservation(t *testing.T, db DBLike, resourceID, requesterID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, resource_id, requester_id, creator_id, start_time, end_time, status, participants)
		VALUES ($1, $2, $3, $3, $4, $5, $6, 1)`,
		reservationID, resourceID, requesterID, start, end, status)
	require.NoError(t, err)

	return reservationID
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sites (id, name) VALUES
		    (gen_random_uuid(), 'Main Campus'),
		    (gen_random_uuid(), 'Annex')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
