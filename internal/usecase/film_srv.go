package usecase

import (
	"context"
	"fmt"

	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/pkg/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FilmService interface {
	ListShowing(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error)
	GetWithSchedules(ctx context.Context, filmID string) (*response.FilmDetailResponse, error)
}

type filmService struct {
	repo    *repository.Repository
	clock   clock.Clock
	perPage int
	log     *zap.Logger
}

func NewFilmService(repo *repository.Repository, clk clock.Clock, perPage int, log *zap.Logger) FilmService {
	return &filmService{
		repo:    repo,
		clock:   clk,
		perPage: perPage,
		log:     log.With(zap.String("service", "film")),
	}
}

func (s *filmService) ListShowing(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error) {
	req.WithDefaultPerPage(s.perPage)

	films, err := s.repo.Film.FindShowing(ctx, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list showing films: %w", err)
	}

	total, err := s.repo.Film.CountShowing(ctx)
	if err != nil {
		return nil, fmt.Errorf("count showing films: %w", err)
	}

	data := make([]response.FilmResponse, 0, len(films))
	for _, film := range films {
		data = append(data, response.FilmToResponse(film))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// GetWithSchedules returns the film with schedules from today onwards, grouped by date.
func (s *filmService) GetWithSchedules(ctx context.Context, filmID string) (*response.FilmDetailResponse, error) {
	id, err := uuid.Parse(filmID)
	if err != nil {
		return nil, ErrFilmNotFound
	}

	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, ErrFilmNotFound
	}

	today := s.clock.Now()
	schedules, err := s.repo.Schedule.FindUpcomingByFilm(ctx, id, today)
	if err != nil {
		return nil, fmt.Errorf("get schedules of film %s: %w", id, err)
	}

	s.log.Debug("Film detail loaded",
		zap.String("film_id", id.String()),
		zap.Int("schedules", len(schedules)),
	)

	return &response.FilmDetailResponse{
		FilmResponse: response.FilmToResponse(film),
		Schedules:    response.GroupSchedulesByDate(schedules),
	}, nil
}
