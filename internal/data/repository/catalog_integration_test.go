package repository_test

import (
	"context"
	"testing"
	"time"

	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/testutil"
	"bioskop-ticket/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func insertFilm(t *testing.T, db database.PgxIface, title string, showing bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO films (id, title, duration_minutes, now_showing) VALUES ($1, $2, 100, $3)`,
		id, title, showing)
	require.NoError(t, err)
	return id
}

func insertStudio(t *testing.T, db database.PgxIface) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO studios (id, name, capacity) VALUES ($1, $2, 60)`,
		id, "Studio "+id.String()[:4])
	require.NoError(t, err)
	return id
}

func insertSchedule(t *testing.T, db database.PgxIface, filmID, studioID uuid.UUID, date time.Time, start string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(context.Background(), `
INSERT INTO schedules (id, film_id, studio_id, show_date, start_time, ticket_price)
VALUES ($1, $2, $3, $4, $5::time, 45000)`,
		id, filmID, studioID, date.Format(time.DateOnly), start)
	require.NoError(t, err)
	return id
}

func TestFilmRepository_FindShowing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFilmRepository(db, zap.NewNop())
	ctx := context.Background()

	insertFilm(t, db, "Siksa Kubur", true)
	insertFilm(t, db, "Dilan 1990", false)
	insertFilm(t, db, "Agak Laen", true)
	insertFilm(t, db, "Pengabdi Setan", true)

	total, err := repo.CountShowing(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	films, err := repo.FindShowing(ctx, 0, 10)
	require.NoError(t, err)
	titles := make([]string, 0, len(films))
	for _, f := range films {
		assert.True(t, f.NowShowing)
		titles = append(titles, f.Title)
	}
	assert.Equal(t, []string{"Agak Laen", "Pengabdi Setan", "Siksa Kubur"}, titles)

	t.Run("second page", func(t *testing.T) {
		films, err := repo.FindShowing(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, films, 1)
		assert.Equal(t, "Siksa Kubur", films[0].Title)
	})

	t.Run("offset past the end", func(t *testing.T) {
		films, err := repo.FindShowing(ctx, 50, 2)
		require.NoError(t, err)
		assert.Empty(t, films)
	})
}

func TestScheduleRepository_FindUpcomingByFilm(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewScheduleRepository(db, zap.NewNop())
	ctx := context.Background()

	filmID := insertFilm(t, db, "Agak Laen", true)
	otherFilm := insertFilm(t, db, "Siksa Kubur", true)
	studioID := insertStudio(t, db)

	today := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	insertSchedule(t, db, filmID, studioID, today.AddDate(0, 0, -1), "19:00")
	late := insertSchedule(t, db, filmID, studioID, tomorrow, "21:15")
	todayShow := insertSchedule(t, db, filmID, studioID, today, "18:45")
	early := insertSchedule(t, db, filmID, studioID, tomorrow, "13:00")
	insertSchedule(t, db, otherFilm, studioID, tomorrow, "10:00")

	// jam berapapun hari ini, jadwal hari ini tetap ikut
	schedules, err := repo.FindUpcomingByFilm(ctx, filmID, today.Add(22*time.Hour))
	require.NoError(t, err)

	require.Len(t, schedules, 3)
	assert.Equal(t, todayShow, schedules[0].ID)
	assert.Equal(t, early, schedules[1].ID)
	assert.Equal(t, "13:00", schedules[1].StartTime)
	assert.Equal(t, late, schedules[2].ID)
	for _, s := range schedules {
		assert.Equal(t, filmID, s.FilmID)
		assert.Equal(t, "Agak Laen", s.Film.Title)
		assert.Equal(t, studioID, s.Studio.ID)
	}

	t.Run("nothing upcoming", func(t *testing.T) {
		schedules, err := repo.FindUpcomingByFilm(ctx, filmID, today.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Empty(t, schedules)
	})
}
