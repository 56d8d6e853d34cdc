package wire

import (
	"bioskop-ticket/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilm(r chi.Router, filmHandler *adaptor.FilmHandler) {
	// ==================== PUBLIC ROUTES ====================
	r.Route("/api/films", func(r chi.Router) {
		// GET /api/films?page= - film yang sedang tayang, urut judul
		r.Get("/", filmHandler.ListFilms)

		// GET /api/films/{id} - detail film + jadwal mulai hari ini
		r.Get("/{id}", filmHandler.GetFilm)
	})
}
