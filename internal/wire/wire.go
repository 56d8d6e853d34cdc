// internal/wire/wire.go
package wire

import (
	"bioskop-ticket/internal/adaptor"
	"bioskop-ticket/internal/cache"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/event"
	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/middleware"
	"bioskop-ticket/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Deps are the infrastructure pieces built in main.
type Deps struct {
	Repo      *repository.Repository
	SeatCache cache.SeatCache
	Publisher event.Publisher
	Clock     clock.Clock
}

// Wiring menginisialisasi semua dependencies
func Wiring(deps Deps, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(deps.Repo, deps.SeatCache, deps.Publisher, deps.Clock, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps.Repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics)

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireFilm(r, handler.Film)
	wireBooking(r, handler.Booking, repo, logger)
	wirePayment(r, handler.Payment, repo, logger)
	wireUser(r, handler.User, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}
