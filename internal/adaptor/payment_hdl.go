package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// ShowPaymentForm handles GET /api/bookings/{id}/payment (protected)
func (h *PaymentHandler) ShowPaymentForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.ShowPaymentForm(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "show payment form")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ProcessPayment handles POST /api/bookings/{id}/payment (protected)
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "process payment")
		return
	}

	// request selesai, tapi pembayaran gagal: status=false, booking dibatalkan
	w.Header().Set("Location", bookingHistoryPath)
	if payment.Status == entity.BookingStatusCancelled {
		utils.ResponseJSON(w, http.StatusOK, false, "Payment failed, booking cancelled.", payment, nil)
		return
	}

	utils.ResponseSuccess(w, fmt.Sprintf("Payment successful. Your reservation code: %s", payment.ReservationCode), payment)
}
