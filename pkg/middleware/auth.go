package middleware

import (
	"net/http"
	"strings"
	"time"

	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession middleware untuk validasi session token UUID.
// User ID dan token disimpan di context untuk handler.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			tokenUUID, err := uuid.Parse(strings.TrimSpace(token))
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), tokenUUID)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil || !session.IsValid(time.Now()) {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, tokenUUID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
