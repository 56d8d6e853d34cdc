package repository

import (
	"bioskop-ticket/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx         Transactor
	User       UserRepository
	Session    SessionRepository
	Film       FilmRepository
	Schedule   ScheduleRepository
	Booking    BookingRepository
	BookedSeat BookedSeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:         NewTransactor(db, log),
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Film:       NewFilmRepository(db, log),
		Schedule:   NewScheduleRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		BookedSeat: NewBookedSeatRepository(db, log),
	}
}
