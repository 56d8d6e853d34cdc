package usecase

import (
	"context"
	"errors"
	"fmt"

	"bioskop-ticket/internal/cache"
	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/dto/request"
	"bioskop-ticket/internal/dto/response"
	"bioskop-ticket/internal/event"
	"bioskop-ticket/pkg/clock"
	"bioskop-ticket/pkg/metrics"
	"bioskop-ticket/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, scheduleID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetMyBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	cache     cache.SeatCache
	publisher event.Publisher
	clock     clock.Clock
	perPage   int
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	seatCache cache.SeatCache,
	publisher event.Publisher,
	clk clock.Clock,
	perPage int,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		cache:     seatCache,
		publisher: publisher,
		clock:     clk,
		perPage:   perPage,
		log:       log.With(zap.String("service", "booking")),
	}
}

// CreateBooking reserves the selected seats for one schedule.
// Conflict check and inserts run in one transaction; the partial unique index
// on booked_seats catches the loser of a concurrent race.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, scheduleID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Kanonisasi lalu validasi kursi
	req.Normalize()
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	scheduleUUID, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, ErrScheduleNotFound
	}

	code, err := utils.GenerateReservationCode()
	if err != nil {
		s.log.Error("Failed to generate reservation code", zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	now := s.clock.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationCode: code,
		UserID:          userID,
		ScheduleID:      scheduleUUID,
		Status:          entity.BookingStatusPending,
	}

	// 2. Transaksi: cek konflik, hitung total, insert booking + kursi
	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		schedule, err := s.repo.Schedule.FindByID(ctx, scheduleUUID)
		if err != nil {
			return fmt.Errorf("load schedule: %w", err)
		}
		if schedule == nil {
			return ErrScheduleNotFound
		}

		conflicts, err := s.repo.BookedSeat.FindConflicts(ctx, scheduleUUID, req.SelectedSeats)
		if err != nil {
			return fmt.Errorf("check seat conflicts: %w", err)
		}
		if len(conflicts) > 0 {
			return &SeatConflictError{Seats: conflicts}
		}

		booking.TotalPrice = schedule.TicketPrice.Mul(decimal.NewFromInt(int64(len(req.SelectedSeats))))

		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		seats := make([]*entity.BookedSeat, 0, len(req.SelectedSeats))
		for _, identifier := range req.SelectedSeats {
			seats = append(seats, &entity.BookedSeat{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				BookingID:      booking.ID,
				ScheduleID:     scheduleUUID,
				SeatIdentifier: identifier,
			})
		}

		if err := s.repo.BookedSeat.CreateBatch(ctx, seats); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				// kursi yang bentrok dicari ulang setelah rollback
				return &SeatConflictError{}
			}
			return fmt.Errorf("insert booked seats: %w", err)
		}

		return nil
	})
	if err != nil {
		var conflictErr *SeatConflictError
		if errors.As(err, &conflictErr) && len(conflictErr.Seats) == 0 {
			conflictErr.Seats = s.contestedSeats(ctx, scheduleUUID, req.SelectedSeats)
		}
		if errors.Is(err, ErrSeatConflict) {
			metrics.SeatConflicts.Inc()
			s.log.Info("Seat conflict on booking",
				zap.String("schedule_id", scheduleID),
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
			return nil, err
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("schedule_id", scheduleID),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	// 3. Setelah commit: cache, event, metrics
	s.cache.Invalidate(ctx, scheduleUUID)
	metrics.BookingsCreated.Inc()
	metrics.SeatsBooked.Add(float64(len(req.SelectedSeats)))
	s.publish(ctx, event.NewBookingEvent(event.TypeBookingCreated, booking, req.SelectedSeats, now))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reservation_code", booking.ReservationCode),
		zap.String("user_id", userID.String()),
		zap.Strings("seats", req.SelectedSeats),
		zap.String("total_price", booking.TotalPrice.StringFixed(2)),
	)

	resp := response.BookingToResponse(booking, req.SelectedSeats)
	return &resp, nil
}

// contestedSeats looks up which of the requested seats the winning booking took.
// Returns nil when the lookup fails; the caller still reports a conflict.
func (s *bookingService) contestedSeats(ctx context.Context, scheduleID uuid.UUID, seats []string) []string {
	conflicts, err := s.repo.BookedSeat.FindConflicts(ctx, scheduleID, seats)
	if err != nil {
		s.log.Warn("Failed to resolve contested seats",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return nil
	}
	return conflicts
}

func (s *bookingService) ListMyBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	req.WithDefaultPerPage(s.perPage)

	details, err := s.repo.Booking.FindDetailsByUser(ctx, userID, req.Offset(), req.Limit())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	if err := s.attachSeats(ctx, details...); err != nil {
		return nil, err
	}

	data := make([]response.BookingResponse, 0, len(details))
	for _, d := range details {
		data = append(data, response.BookingDetailToResponse(d))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetMyBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	detail, err := s.repo.Booking.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if detail == nil {
		return nil, ErrBookingNotFound
	}
	if detail.UserID != userID {
		s.log.Warn("Booking accessed by non-owner",
			zap.String("booking_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, ErrForbidden
	}

	if err := s.attachSeats(ctx, detail); err != nil {
		return nil, err
	}

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

// attachSeats loads seats of all details with a single query.
func (s *bookingService) attachSeats(ctx context.Context, details ...*entity.BookingDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
	}

	seatsByBooking, err := s.repo.BookedSeat.FindIdentifiersByBookings(ctx, ids)
	if err != nil {
		return fmt.Errorf("load booked seats: %w", err)
	}

	for _, d := range details {
		d.Seats = seatsByBooking[d.ID]
	}
	return nil
}

func (s *bookingService) publish(ctx context.Context, evt event.BookingEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Warn("Booking event not published",
			zap.String("type", string(evt.Type)),
			zap.String("booking_id", evt.BookingID),
			zap.Error(err),
		)
	}
}
