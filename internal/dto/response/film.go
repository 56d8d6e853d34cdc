package response

import (
	"bioskop-ticket/internal/data/entity"
)

type FilmResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Synopsis        *string `json:"synopsis,omitempty"`
	PosterURL       *string `json:"poster_url,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	NowShowing      bool    `json:"now_showing"`
}

// FilmDetailResponse. Schedules sudah dikelompokkan per tanggal, urut naik.
type FilmDetailResponse struct {
	FilmResponse
	Schedules []ScheduleDateGroup `json:"schedules"`
}

func FilmToResponse(film *entity.Film) FilmResponse {
	return FilmResponse{
		ID:              film.ID.String(),
		Title:           film.Title,
		Synopsis:        film.Synopsis,
		PosterURL:       film.PosterURL,
		DurationMinutes: film.DurationMinutes,
		NowShowing:      film.NowShowing,
	}
}
