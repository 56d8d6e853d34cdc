package repository

import (
	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the booking row; only meaningful inside WithTx.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindDetailByID returns the booking joined with schedule, film and studio. Seats are not loaded.
	FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error)
	FindDetailsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.BookingDetail, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// UpdateStatus moves a booking from one status to another and reports whether a row changed.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `b.id, b.reservation_code, b.user_id, b.schedule_id, b.total_price, b.status, b.created_at, b.updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reservation_code, user_id, schedule_id,
		                      total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := conn(ctx, r.db).Exec(ctx, query,
		booking.ID,
		booking.ReservationCode,
		booking.UserID,
		booking.ScheduleID,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reservation_code", booking.ReservationCode),
			zap.String("user_id", booking.UserID.String()),
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("create booking %s: %w", booking.ReservationCode, ErrUniqueViolation)
		}
		return fmt.Errorf("create booking %s: %w", booking.ReservationCode, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`, id)
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1 FOR UPDATE`, id)
}

func (r *bookingRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := scanBooking(conn(ctx, r.db).QueryRow(ctx, query, id), &booking)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *bookingRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	query := `
		SELECT ` + bookingColumns + `,` + scheduleDetailSelect + `
		FROM bookings b
		JOIN schedules s ON s.id = b.schedule_id` + scheduleDetailJoin + `
		WHERE b.id = $1
	`

	var detail entity.BookingDetail
	err := scanBookingDetail(conn(ctx, r.db).QueryRow(ctx, query, id), &detail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking detail",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking detail %s: %w", id, err)
	}

	return &detail, nil
}

// FindDetailsByUser: satu query join untuk satu halaman, kursi di-load terpisah per halaman
func (r *bookingRepository) FindDetailsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT ` + bookingColumns + `,` + scheduleDetailSelect + `
		FROM bookings b
		JOIN schedules s ON s.id = b.schedule_id` + scheduleDetailJoin + `
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := conn(ctx, r.db).Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to query user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query bookings for user %s: %w", userID, err)
	}
	defer rows.Close()

	details := make([]*entity.BookingDetail, 0, limit)
	for rows.Next() {
		var detail entity.BookingDetail
		if err := scanBookingDetail(rows, &detail); err != nil {
			r.log.Error("Failed to scan booking detail", zap.Error(err))
			return nil, fmt.Errorf("scan booking detail: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return details, nil
}

func (r *bookingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings for user %s: %w", userID, err)
	}
	return total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := conn(ctx, r.db).Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update booking %s status: %w", id, err)
	}

	return result.RowsAffected() == 1, nil
}

func scanBooking(row pgx.Row, b *entity.Booking) error {
	return row.Scan(bookingDest(b)...)
}

func bookingDest(b *entity.Booking) []any {
	return []any{
		&b.ID, &b.ReservationCode, &b.UserID, &b.ScheduleID,
		&b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	}
}

func scanBookingDetail(row pgx.Row, d *entity.BookingDetail) error {
	dest := append(bookingDest(&d.Booking), scheduleDetailDest(&d.Schedule)...)
	return row.Scan(dest...)
}
