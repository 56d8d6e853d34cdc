package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	BaseNoDelete
	ReservationCode string          `db:"reservation_code"`
	UserID          uuid.UUID       `db:"user_id"`
	ScheduleID      uuid.UUID       `db:"schedule_id"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	Status          BookingStatus   `db:"status"`
}

// IsPayableBy reports whether userID may still pay for this booking.
func (b *Booking) IsPayableBy(userID uuid.UUID) bool {
	return b.UserID == userID && b.Status == BookingStatusPending
}

// BookingDetail carries the booking with its schedule, film, studio and seats.
type BookingDetail struct {
	Booking
	Schedule ScheduleDetail
	Seats    []string
}
