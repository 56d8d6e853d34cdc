package adaptor

import (
	"net/http"

	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/usecase"
	"bioskop-ticket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// ListFilms handles GET /api/films?page=&per_page=
func (h *FilmHandler) ListFilms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 0),
	}

	films, err := h.service.ListShowing(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list films")
		return
	}

	utils.ResponseSuccess(w, "success", films)
}

// GetFilm handles GET /api/films/{id}
func (h *FilmHandler) GetFilm(w http.ResponseWriter, r *http.Request) {
	film, err := h.service.GetWithSchedules(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get film")
		return
	}

	utils.ResponseSuccess(w, "success", film)
}
