package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS_AllowList(t *testing.T) {
	h := CORS([]string{"https://bioskop.example.com"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/films", nil)
	req.Header.Set("Origin", "https://bioskop.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://bioskop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Location", rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	h := CORS([]string{"https://bioskop.example.com"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/films", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/films", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORS_WildcardPreflight(t *testing.T) {
	h := CORS([]string{"*"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/schedules/x/bookings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
