package wire

import (
	"bioskop-ticket/internal/adaptor"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/schedules/{id}/seats - kursi yang sudah terpesan
		r.Get("/api/schedules/{id}/seats", bookingHandler.GetSeatMap)

		// POST /api/schedules/{id}/bookings - pesan kursi
		r.Post("/api/schedules/{id}/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - riwayat booking user
		r.Get("/api/user/bookings", bookingHandler.GetMyBookings)

		// GET /api/user/bookings/{id} - detail booking milik user
		r.Get("/api/user/bookings/{id}", bookingHandler.GetMyBooking)
	})
}
