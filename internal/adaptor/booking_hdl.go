package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"

	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	seatService    usecase.SeatService
	bookingService usecase.BookingService
	log            *zap.Logger
}

func NewBookingHandler(seatService usecase.SeatService, bookingService usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		seatService:    seatService,
		bookingService: bookingService,
		log:            log.With(zap.String("handler", "booking")),
	}
}

// GetSeatMap handles GET /api/schedules/{id}/seats (protected)
func (h *BookingHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.seatService.GetSeatMap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// CreateBooking handles POST /api/schedules/{id}/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// validasi dilakukan di service setelah kanonisasi kursi
	booking, err := h.bookingService.CreateBooking(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/bookings/%s/payment", booking.ID))
	utils.ResponseCreated(w, "Booking created. Please complete the payment.", booking)
}

// GetMyBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 0),
	}

	bookings, err := h.bookingService.ListMyBookings(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetMyBooking handles GET /api/user/bookings/{id} (protected)
func (h *BookingHandler) GetMyBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.bookingService.GetMyBooking(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get user booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
