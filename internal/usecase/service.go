package usecase

import (
	"bioskop-ticket/internal/cache"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/event"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Film    FilmService
	Seat    SeatService
	Booking BookingService
	Payment PaymentService
	User    UserService
}

func NewService(
	repo *repository.Repository,
	seatCache cache.SeatCache,
	publisher event.Publisher,
	clk clock.Clock,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, clk, log),
		Film:    NewFilmService(repo, clk, config.Pagination.FilmsPerPage, log),
		Seat:    NewSeatService(repo, seatCache, log),
		Booking: NewBookingService(repo, seatCache, publisher, clk, config.Pagination.BookingsPerPage, log),
		Payment: NewPaymentService(repo, seatCache, publisher, clk, log),
		User:    NewUserService(repo.User, log),
	}
}
