package adaptor

import (
	"errors"
	"net/http"

	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"go.uber.org/zap"
)

const bookingHistoryPath = "/api/user/bookings"

// handleServiceError maps usecase errors to HTTP responses.
// Unknown errors are logged and answered with a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError
	var conflictErr *usecase.SeatConflictError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &conflictErr):
		log.Info(operation+" failed - seat conflict", zap.Strings("seats", conflictErr.Seats))
		var details any
		if len(conflictErr.Seats) > 0 {
			details = map[string][]string{"unavailable_seats": conflictErr.Seats}
		}
		utils.ResponseConflict(w, "Some of the selected seats are no longer available. Please choose again.", details)

	case errors.Is(err, usecase.ErrBookingNotPayable):
		log.Warn(operation+" failed - booking not payable", zap.Error(err))
		w.Header().Set("Location", bookingHistoryPath)
		utils.ResponseForbidden(w, "Booking is not awaiting payment or does not belong to you")

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountInactive):
		log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
