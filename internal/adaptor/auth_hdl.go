package adaptor

import (
	"encoding/json"
	"net/http"

	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout (protected, token diset AuthSession)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}
