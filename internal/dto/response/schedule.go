package response

import (
	"time"

	"bioskop-ticket/internal/data/entity"

	"github.com/shopspring/decimal"
)

type StudioResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type ScheduleResponse struct {
	ID          string          `json:"id"`
	FilmID      string          `json:"film_id"`
	FilmTitle   string          `json:"film_title"`
	ShowDate    string          `json:"show_date"`
	StartTime   string          `json:"start_time"`
	TicketPrice decimal.Decimal `json:"ticket_price"`
	Studio      StudioResponse  `json:"studio"`
}

// ScheduleDateGroup holds the schedules of one calendar date (YYYY-MM-DD).
type ScheduleDateGroup struct {
	Date      string             `json:"date"`
	Schedules []ScheduleResponse `json:"schedules"`
}

func ScheduleToResponse(s *entity.ScheduleDetail) ScheduleResponse {
	return ScheduleResponse{
		ID:          s.ID.String(),
		FilmID:      s.FilmID.String(),
		FilmTitle:   s.Film.Title,
		ShowDate:    s.ShowDate.Format(time.DateOnly),
		StartTime:   s.StartTime,
		TicketPrice: s.TicketPrice,
		Studio: StudioResponse{
			ID:       s.Studio.ID.String(),
			Name:     s.Studio.Name,
			Capacity: s.Studio.Capacity,
		},
	}
}

// GroupSchedulesByDate groups consecutive schedules sharing a show date.
// Input must already be ordered by date then start time; group order follows input order.
func GroupSchedulesByDate(schedules []*entity.ScheduleDetail) []ScheduleDateGroup {
	groups := []ScheduleDateGroup{}
	for _, s := range schedules {
		date := s.ShowDate.Format(time.DateOnly)
		if n := len(groups); n > 0 && groups[n-1].Date == date {
			groups[n-1].Schedules = append(groups[n-1].Schedules, ScheduleToResponse(s))
			continue
		}
		groups = append(groups, ScheduleDateGroup{
			Date:      date,
			Schedules: []ScheduleResponse{ScheduleToResponse(s)},
		})
	}
	return groups
}
