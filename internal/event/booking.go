package event

import (
	"time"

	"bioskop-ticket/internal/data/entity"
)

type Type string

const (
	TypeBookingCreated   Type = "booking.created"
	TypeBookingPaid      Type = "booking.paid"
	TypeBookingCancelled Type = "booking.cancelled"
)

// BookingEvent is the JSON payload published on the booking exchange.
// Routing key is the event type.
type BookingEvent struct {
	Type            Type      `json:"type"`
	BookingID       string    `json:"booking_id"`
	ReservationCode string    `json:"reservation_code"`
	UserID          string    `json:"user_id"`
	ScheduleID      string    `json:"schedule_id"`
	Status          string    `json:"status"`
	TotalPrice      string    `json:"total_price"`
	Seats           []string  `json:"seats,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func NewBookingEvent(t Type, booking *entity.Booking, seats []string, at time.Time) BookingEvent {
	return BookingEvent{
		Type:            t,
		BookingID:       booking.ID.String(),
		ReservationCode: booking.ReservationCode,
		UserID:          booking.UserID.String(),
		ScheduleID:      booking.ScheduleID.String(),
		Status:          string(booking.Status),
		TotalPrice:      booking.TotalPrice.StringFixed(2),
		Seats:           seats,
		OccurredAt:      at.UTC(),
	}
}
