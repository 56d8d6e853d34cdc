package wire

import (
	"bioskop-ticket/internal/adaptor"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
