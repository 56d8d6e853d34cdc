package wire

import (
	"bioskop-ticket/internal/adaptor"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// User profile - requires authentication
	r.With(middleware.AuthSession(repo.Session, log)).Get("/api/user/profile", userHandler.GetProfile)
}
