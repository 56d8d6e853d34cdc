package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bioskop",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "bookings_created_total",
		Help:      "Bookings committed in pending status.",
	})

	SeatsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "seats_booked_total",
		Help:      "Seats held by committed bookings.",
	})

	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "seat_conflicts_total",
		Help:      "Booking attempts rejected because a seat was already held.",
	})

	PaymentOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "payment_outcomes_total",
		Help:      "Processed simulated payments by outcome.",
	}, []string{"outcome"})

	SeatCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bioskop",
		Name:      "seat_cache_lookups_total",
		Help:      "Seat map cache lookups by result (hit or miss).",
	}, []string{"result"})
)
