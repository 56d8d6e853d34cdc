package usecase

import (
	"context"
	"fmt"

	"bioskop-ticket/internal/cache"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	// GetSeatMap is advisory only, booking re-checks inside its transaction.
	GetSeatMap(ctx context.Context, scheduleID string) (*response.SeatMapResponse, error)
}

type seatService struct {
	repo  *repository.Repository
	cache cache.SeatCache
	log   *zap.Logger
}

func NewSeatService(repo *repository.Repository, seatCache cache.SeatCache, log *zap.Logger) SeatService {
	return &seatService{
		repo:  repo,
		cache: seatCache,
		log:   log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetSeatMap(ctx context.Context, scheduleID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, ErrScheduleNotFound
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	seats, version, hit := s.cache.Get(ctx, id)
	if hit {
		metrics.SeatCacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.SeatCacheLookups.WithLabelValues("miss").Inc()

		seats, err = s.repo.BookedSeat.FindHeldIdentifiers(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get booked seats: %w", err)
		}
		s.cache.Set(ctx, id, version, seats)
	}

	if seats == nil {
		seats = []string{}
	}

	available := schedule.Studio.Capacity - len(seats)
	if available < 0 {
		available = 0
	}

	return &response.SeatMapResponse{
		Schedule:    response.ScheduleToResponse(schedule),
		BookedSeats: seats,
		Available:   available,
	}, nil
}
