package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFilmService struct{ mock.Mock }

func (m *mockFilmService) ListShowing(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.FilmResponse])
	return resp, args.Error(1)
}

func (m *mockFilmService) GetWithSchedules(ctx context.Context, filmID string) (*response.FilmDetailResponse, error) {
	args := m.Called(ctx, filmID)
	resp, _ := args.Get(0).(*response.FilmDetailResponse)
	return resp, args.Error(1)
}

type mockSeatService struct{ mock.Mock }

func (m *mockSeatService) GetSeatMap(ctx context.Context, scheduleID string) (*response.SeatMapResponse, error) {
	args := m.Called(ctx, scheduleID)
	resp, _ := args.Get(0).(*response.SeatMapResponse)
	return resp, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, userID uuid.UUID, scheduleID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, scheduleID, req)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) ListMyBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*response.PaginatedResponse[response.BookingResponse])
	return resp, args.Error(1)
}

func (m *mockBookingService) GetMyBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

type mockPaymentService struct{ mock.Mock }

func (m *mockPaymentService) ShowPaymentForm(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	resp, _ := args.Get(0).(*response.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockPaymentService) ProcessPayment(ctx context.Context, userID uuid.UUID, bookingID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	args := m.Called(ctx, userID, bookingID, req)
	resp, _ := args.Get(0).(*response.PaymentResponse)
	return resp, args.Error(1)
}

// ==================== HELPERS ====================

// withUser stands in for AuthSession.
func withUser(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}

func serve(t *testing.T, router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
