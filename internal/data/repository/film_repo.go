package repository

import (
	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	FindShowing(ctx context.Context, offset, limit int) ([]*entity.Film, error)
	CountShowing(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error)
}

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

const filmColumns = `id, title, synopsis, poster_url, duration_minutes, now_showing, created_at, updated_at`

// FindShowing returns films flagged now_showing ordered by title.
func (r *filmRepository) FindShowing(ctx context.Context, offset, limit int) ([]*entity.Film, error) {
	query := `
		SELECT ` + filmColumns + `
		FROM films
		WHERE now_showing = TRUE
		ORDER BY title ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to query showing films",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("query showing films: %w", err)
	}
	defer rows.Close()

	films := make([]*entity.Film, 0, limit)
	for rows.Next() {
		var film entity.Film
		if err := scanFilm(rows, &film); err != nil {
			r.log.Error("Failed to scan film", zap.Error(err))
			return nil, fmt.Errorf("scan film: %w", err)
		}
		films = append(films, &film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}

	return films, nil
}

func (r *filmRepository) CountShowing(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM films WHERE now_showing = TRUE`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count showing films", zap.Error(err))
		return 0, fmt.Errorf("count showing films: %w", err)
	}
	return total, nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error) {
	query := `SELECT ` + filmColumns + ` FROM films WHERE id = $1`

	var film entity.Film
	err := scanFilm(conn(ctx, r.db).QueryRow(ctx, query, id), &film)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.String("film_id", id.String()),
		)
		return nil, fmt.Errorf("find film %s: %w", id, err)
	}

	return &film, nil
}

func scanFilm(row pgx.Row, film *entity.Film) error {
	return row.Scan(
		&film.ID,
		&film.Title,
		&film.Synopsis,
		&film.PosterURL,
		&film.DurationMinutes,
		&film.NowShowing,
		&film.CreatedAt,
		&film.UpdatedAt,
	)
}
