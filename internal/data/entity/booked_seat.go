package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookedSeat. ReleasedAt terisi saat booking dibatalkan, kursi bebas lagi.
type BookedSeat struct {
	BaseSimple
	BookingID      uuid.UUID  `db:"booking_id"`
	ScheduleID     uuid.UUID  `db:"schedule_id"`
	SeatIdentifier string     `db:"seat_identifier"`
	ReleasedAt     *time.Time `db:"released_at"`
}
