package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"bioskop-ticket/pkg/database"
	"bioskop-ticket/pkg/database/migrations"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const testDBLockID int64 = 720451904

// NewTestDB connects to TEST_DATABASE_URL, applies migrations and wipes all rows.
// The test is skipped when the variable is unset or Postgres is unreachable.
func NewTestDB(t *testing.T) database.PgxIface {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	cfg.MaxConns = 12

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("skipping Postgres integration tests: %v", err)
	}

	t.Cleanup(pool.Close)

	lockTestDB(t, pool)

	db := database.NewDB(pool)
	if err := migrations.Apply(ctx, db); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	if _, err := pool.Exec(ctx,
		`TRUNCATE booked_seats, bookings, schedules, studios, films, sessions, users CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return db
}

type Fixture struct {
	UserIDs    []uuid.UUID
	FilmID     uuid.UUID
	ScheduleID uuid.UUID
}

// SeedSchedule inserts users, one now-showing film, a studio and a schedule on showDate.
func SeedSchedule(t *testing.T, db database.PgxIface, users int, capacity int, price string, showDate time.Time) Fixture {
	t.Helper()
	ctx := context.Background()

	f := Fixture{FilmID: uuid.New(), ScheduleID: uuid.New()}
	for i := 0; i < users; i++ {
		id := uuid.New()
		if _, err := db.Exec(ctx,
			`INSERT INTO users (id, username, email, password) VALUES ($1, $2, $3, 'x')`,
			id, "user_"+id.String()[:8], id.String()[:8]+"@example.com",
		); err != nil {
			t.Fatalf("insert user: %v", err)
		}
		f.UserIDs = append(f.UserIDs, id)
	}

	studioID := uuid.New()
	if _, err := db.Exec(ctx,
		`INSERT INTO films (id, title, duration_minutes, now_showing) VALUES ($1, 'Agak Laen', 119, TRUE)`,
		f.FilmID,
	); err != nil {
		t.Fatalf("insert film: %v", err)
	}
	if _, err := db.Exec(ctx,
		`INSERT INTO studios (id, name, capacity) VALUES ($1, 'Studio 1', $2)`,
		studioID, capacity,
	); err != nil {
		t.Fatalf("insert studio: %v", err)
	}
	if _, err := db.Exec(ctx, `
INSERT INTO schedules (id, film_id, studio_id, show_date, start_time, ticket_price)
VALUES ($1, $2, $3, $4, '19:30', $5)`,
		f.ScheduleID, f.FilmID, studioID, showDate, decimal.RequireFromString(price),
	); err != nil {
		t.Fatalf("insert schedule: %v", err)
	}

	return f
}

func lockTestDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquire lock conn: %v", err)
	}
	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, testDBLockID); err != nil {
		conn.Release()
		t.Fatalf("acquire test lock: %v", err)
	}

	t.Cleanup(func() {
		_, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, testDBLockID)
		conn.Release()
	})
}
