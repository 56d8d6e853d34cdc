package wire

import (
	"bioskop-ticket/internal/adaptor"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/bookings/{id}/payment", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET - form pembayaran, hanya booking pending milik user
		r.Get("/", paymentHandler.ShowPaymentForm)

		// POST - simulasi hasil pembayaran: success | failed
		r.Post("/", paymentHandler.ProcessPayment)
	})
}
