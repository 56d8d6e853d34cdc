package repository

import (
	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/database"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookedSeatRepository interface {
	// FindHeldIdentifiers returns the sorted identifiers held by unreleased rows of a schedule.
	FindHeldIdentifiers(ctx context.Context, scheduleID uuid.UUID) ([]string, error)
	// FindConflicts returns which of seats are already held for the schedule.
	FindConflicts(ctx context.Context, scheduleID uuid.UUID, seats []string) ([]string, error)
	// CreateBatch inserts all rows in one statement. A clash with a held seat yields ErrUniqueViolation.
	CreateBatch(ctx context.Context, seats []*entity.BookedSeat) error
	ReleaseByBooking(ctx context.Context, bookingID uuid.UUID) error
	FindIdentifiersByBookings(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type bookedSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookedSeatRepository(db database.PgxIface, log *zap.Logger) BookedSeatRepository {
	return &bookedSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "booked_seat")),
	}
}

func (r *bookedSeatRepository) FindHeldIdentifiers(ctx context.Context, scheduleID uuid.UUID) ([]string, error) {
	query := `
		SELECT seat_identifier
		FROM booked_seats
		WHERE schedule_id = $1 AND released_at IS NULL
		ORDER BY seat_identifier
	`

	seats, err := r.collectIdentifiers(ctx, query, scheduleID)
	if err != nil {
		r.log.Error("Failed to find held seats",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return nil, fmt.Errorf("find held seats for schedule %s: %w", scheduleID, err)
	}
	return seats, nil
}

func (r *bookedSeatRepository) FindConflicts(ctx context.Context, scheduleID uuid.UUID, seats []string) ([]string, error) {
	query := `
		SELECT seat_identifier
		FROM booked_seats
		WHERE schedule_id = $1
		  AND seat_identifier = ANY($2)
		  AND released_at IS NULL
		ORDER BY seat_identifier
	`

	conflicts, err := r.collectIdentifiers(ctx, query, scheduleID, seats)
	if err != nil {
		r.log.Error("Failed to check seat conflicts",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
			zap.Strings("seats", seats),
		)
		return nil, fmt.Errorf("check seat conflicts for schedule %s: %w", scheduleID, err)
	}
	return conflicts, nil
}

func (r *bookedSeatRepository) CreateBatch(ctx context.Context, seats []*entity.BookedSeat) error {
	if len(seats) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(seats))
	bookingIDs := make([]uuid.UUID, len(seats))
	scheduleIDs := make([]uuid.UUID, len(seats))
	identifiers := make([]string, len(seats))
	for i, seat := range seats {
		ids[i] = seat.ID
		bookingIDs[i] = seat.BookingID
		scheduleIDs[i] = seat.ScheduleID
		identifiers[i] = seat.SeatIdentifier
	}

	query := `
		INSERT INTO booked_seats (id, booking_id, schedule_id, seat_identifier, created_at)
		SELECT id, booking_id, schedule_id, seat_identifier, $5
		FROM unnest($1::uuid[], $2::uuid[], $3::uuid[], $4::text[])
		     AS t(id, booking_id, schedule_id, seat_identifier)
	`

	_, err := conn(ctx, r.db).Exec(ctx, query, ids, bookingIDs, scheduleIDs, identifiers, seats[0].CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warn("Seat already held while inserting",
				zap.String("booking_id", seats[0].BookingID.String()),
				zap.Strings("seats", identifiers),
			)
			return fmt.Errorf("insert booked seats: %w", ErrUniqueViolation)
		}
		r.log.Error("Failed to insert booked seats",
			zap.Error(err),
			zap.String("booking_id", seats[0].BookingID.String()),
		)
		return fmt.Errorf("insert booked seats: %w", err)
	}

	return nil
}

func (r *bookedSeatRepository) ReleaseByBooking(ctx context.Context, bookingID uuid.UUID) error {
	query := `
		UPDATE booked_seats
		SET released_at = NOW()
		WHERE booking_id = $1 AND released_at IS NULL
	`

	if _, err := conn(ctx, r.db).Exec(ctx, query, bookingID); err != nil {
		r.log.Error("Failed to release booked seats",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("release seats of booking %s: %w", bookingID, err)
	}
	return nil
}

// FindIdentifiersByBookings loads seats for many bookings in one query.
func (r *bookedSeatRepository) FindIdentifiersByBookings(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	result := make(map[uuid.UUID][]string, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT booking_id, seat_identifier
		FROM booked_seats
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, seat_identifier
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, bookingIDs)
	if err != nil {
		r.log.Error("Failed to query seats by bookings", zap.Error(err), zap.Int("bookings", len(bookingIDs)))
		return nil, fmt.Errorf("query seats by bookings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID uuid.UUID
		var seat string
		if err := rows.Scan(&bookingID, &seat); err != nil {
			return nil, fmt.Errorf("scan booked seat: %w", err)
		}
		result[bookingID] = append(result[bookingID], seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booked seats: %w", err)
	}

	return result, nil
}

func (r *bookedSeatRepository) collectIdentifiers(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := []string{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, rows.Err()
}
