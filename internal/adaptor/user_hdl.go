package adaptor

import (
	"net/http"

	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	// Get user ID from context (set by auth middleware)
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}
