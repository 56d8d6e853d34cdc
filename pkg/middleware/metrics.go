package middleware

import (
	"net/http"
	"strconv"
	"time"

	"bioskop-ticket/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency per chi route pattern,
// so /api/films/{id} stays one series regardless of id.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
