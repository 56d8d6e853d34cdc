package entity

type Film struct {
	BaseNoDelete
	Title           string  `db:"title"`
	Synopsis        *string `db:"synopsis"`
	PosterURL       *string `db:"poster_url"`
	DurationMinutes int     `db:"duration_minutes"`
	NowShowing      bool    `db:"now_showing"`
}
