package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Schedule struct {
	BaseNoDelete
	FilmID      uuid.UUID       `db:"film_id"`
	StudioID    uuid.UUID       `db:"studio_id"`
	ShowDate    time.Time       `db:"show_date"`
	StartTime   string          `db:"start_time"` // HH:MM
	TicketPrice decimal.Decimal `db:"ticket_price"`
}

// ScheduleDetail adalah schedule yang sudah di-join dengan film dan studio.
type ScheduleDetail struct {
	Schedule
	Film   Film
	Studio Studio
}
