package adaptor

import (
	"net/http"
	"testing"

	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFilmRouter(h *FilmHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/films", h.ListFilms)
	r.Get("/api/films/{id}", h.GetFilm)
	return r
}

func TestFilmHandler_ListFilms(t *testing.T) {
	svc := &mockFilmService{}
	defer svc.AssertExpectations(t)

	films := []response.FilmResponse{{ID: uuid.NewString(), Title: "Agak Laen", DurationMinutes: 119, NowShowing: true}}
	svc.On("ListShowing", mock.Anything, &request.PaginatedRequest{Page: 1, PerPage: 0}).
		Return(response.NewPaginatedResponse(films, 1, 8, 1), nil)

	rec := serve(t, newFilmRouter(NewFilmHandler(svc, testLogger())), http.MethodGet, "/api/films", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Agak Laen")
	assert.Contains(t, rec.Body.String(), `"per_page":8`)
}

func TestFilmHandler_ListFilms_InvalidQueryFallsBack(t *testing.T) {
	svc := &mockFilmService{}
	defer svc.AssertExpectations(t)

	svc.On("ListShowing", mock.Anything, &request.PaginatedRequest{Page: 1, PerPage: 0}).
		Return(response.NewPaginatedResponse([]response.FilmResponse{}, 1, 8, 0), nil)

	rec := serve(t, newFilmRouter(NewFilmHandler(svc, testLogger())), http.MethodGet, "/api/films?page=-2&per_page=abc", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestFilmHandler_GetFilm_NotFound(t *testing.T) {
	svc := &mockFilmService{}
	id := uuid.NewString()
	svc.On("GetWithSchedules", mock.Anything, id).Return(nil, usecase.ErrFilmNotFound)

	rec := serve(t, newFilmRouter(NewFilmHandler(svc, testLogger())), http.MethodGet, "/api/films/"+id, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
}
