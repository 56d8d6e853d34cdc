package adaptor

import (
	"bioskop-ticket/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Film    *FilmHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Film:    NewFilmHandler(service.Film, log),
		Booking: NewBookingHandler(service.Seat, service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		User:    NewUserHandler(service.User, log),
	}
}
