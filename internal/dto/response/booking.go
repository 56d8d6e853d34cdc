package response

import (
	"time"

	"bioskop-ticket/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	ReservationCode string               `json:"reservation_code"`
	Status          entity.BookingStatus `json:"status"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
	Seats           []string             `json:"seats"`
	Schedule        *ScheduleResponse    `json:"schedule,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	BookingID       string               `json:"booking_id"`
	ReservationCode string               `json:"reservation_code"`
	Status          entity.BookingStatus `json:"status"`
	TotalPrice      decimal.Decimal      `json:"total_price"`
}

// Helper converters
func BookingToResponse(b *entity.Booking, seats []string) BookingResponse {
	if seats == nil {
		seats = []string{}
	}
	return BookingResponse{
		ID:              b.ID.String(),
		ReservationCode: b.ReservationCode,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		Seats:           seats,
		CreatedAt:       b.CreatedAt,
	}
}

func BookingDetailToResponse(d *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&d.Booking, d.Seats)
	schedule := ScheduleToResponse(&d.Schedule)
	resp.Schedule = &schedule
	return resp
}

func PaymentToResponse(b *entity.Booking) PaymentResponse {
	return PaymentResponse{
		BookingID:       b.ID.String(),
		ReservationCode: b.ReservationCode,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
	}
}
