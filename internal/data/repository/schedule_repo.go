package repository

import (
	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/database"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	// FindUpcomingByFilm returns schedules of a film on or after the given date,
	// ordered by show_date then start_time, with studio joined.
	FindUpcomingByFilm(ctx context.Context, filmID uuid.UUID, fromDate time.Time) ([]*entity.ScheduleDetail, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduleDetail, error)
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

// scheduleDetailSelect di-share dengan booking_repo untuk join schedule + film + studio
const scheduleDetailSelect = `
		s.id, s.film_id, s.studio_id, s.show_date, to_char(s.start_time, 'HH24:MI'),
		s.ticket_price, s.created_at, s.updated_at,
		f.id, f.title, f.synopsis, f.poster_url, f.duration_minutes, f.now_showing,
		f.created_at, f.updated_at,
		st.id, st.name, st.capacity, st.created_at, st.updated_at`

const scheduleDetailJoin = `
		JOIN films f ON f.id = s.film_id
		JOIN studios st ON st.id = s.studio_id`

func (r *scheduleRepository) FindUpcomingByFilm(ctx context.Context, filmID uuid.UUID, fromDate time.Time) ([]*entity.ScheduleDetail, error) {
	query := `
		SELECT ` + scheduleDetailSelect + `
		FROM schedules s` + scheduleDetailJoin + `
		WHERE s.film_id = $1 AND s.show_date >= $2::date
		ORDER BY s.show_date ASC, s.start_time ASC
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, filmID, fromDate.Format(time.DateOnly))
	if err != nil {
		r.log.Error("Failed to query upcoming schedules",
			zap.Error(err),
			zap.String("film_id", filmID.String()),
		)
		return nil, fmt.Errorf("query schedules for film %s: %w", filmID, err)
	}
	defer rows.Close()

	var schedules []*entity.ScheduleDetail
	for rows.Next() {
		var detail entity.ScheduleDetail
		if err := scanScheduleDetail(rows, &detail); err != nil {
			r.log.Error("Failed to scan schedule", zap.Error(err))
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		schedules = append(schedules, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedules: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduleDetail, error) {
	query := `
		SELECT ` + scheduleDetailSelect + `
		FROM schedules s` + scheduleDetailJoin + `
		WHERE s.id = $1
	`

	var detail entity.ScheduleDetail
	err := scanScheduleDetail(conn(ctx, r.db).QueryRow(ctx, query, id), &detail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule %s: %w", id, err)
	}

	return &detail, nil
}

func scheduleDetailDest(d *entity.ScheduleDetail) []any {
	return []any{
		&d.ID, &d.FilmID, &d.StudioID, &d.ShowDate, &d.StartTime,
		&d.TicketPrice, &d.CreatedAt, &d.UpdatedAt,
		&d.Film.ID, &d.Film.Title, &d.Film.Synopsis, &d.Film.PosterURL, &d.Film.DurationMinutes, &d.Film.NowShowing,
		&d.Film.CreatedAt, &d.Film.UpdatedAt,
		&d.Studio.ID, &d.Studio.Name, &d.Studio.Capacity, &d.Studio.CreatedAt, &d.Studio.UpdatedAt,
	}
}

func scanScheduleDetail(row pgx.Row, d *entity.ScheduleDetail) error {
	return row.Scan(scheduleDetailDest(d)...)
}
