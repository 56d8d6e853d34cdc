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
	"go.uber.org/zap"
)

// PaymentService mensimulasikan pembayaran, tidak ada gateway sungguhan.
type PaymentService interface {
	ShowPaymentForm(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	ProcessPayment(ctx context.Context, userID uuid.UUID, bookingID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo      *repository.Repository
	cache     cache.SeatCache
	publisher event.Publisher
	clock     clock.Clock
	log       *zap.Logger
}

func NewPaymentService(
	repo *repository.Repository,
	seatCache cache.SeatCache,
	publisher event.Publisher,
	clk clock.Clock,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		repo:      repo,
		cache:     seatCache,
		publisher: publisher,
		clock:     clk,
		log:       log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) ShowPaymentForm(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	detail, err := s.repo.Booking.FindDetailByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking for payment: %w", err)
	}
	if detail == nil {
		return nil, ErrBookingNotFound
	}
	if !detail.IsPayableBy(userID) {
		s.log.Warn("Payment form rejected",
			zap.String("booking_id", id.String()),
			zap.String("user_id", userID.String()),
			zap.String("status", string(detail.Status)),
		)
		return nil, ErrBookingNotPayable
	}

	seats, err := s.repo.BookedSeat.FindIdentifiersByBookings(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("get booked seats: %w", err)
	}
	detail.Seats = seats[id]

	resp := response.BookingDetailToResponse(detail)
	return &resp, nil
}

// ProcessPayment moves a pending booking to paid or cancelled exactly once.
// A failed payment also releases the seats so they can be booked again.
func (s *paymentService) ProcessPayment(ctx context.Context, userID uuid.UUID, bookingID string, req *request.ProcessPaymentRequest) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	target := entity.BookingStatusPaid
	var booking *entity.Booking
	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		b, err := s.repo.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("lock booking: %w", err)
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !b.IsPayableBy(userID) {
			return ErrBookingNotPayable
		}

		// outcome baru divalidasi setelah pemilik + status pending terbukti
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			return NewValidationError(errs)
		}
		if req.PaymentStatus == request.PaymentStatusFailed {
			target = entity.BookingStatusCancelled
		}

		updated, err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusPending, target)
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}
		if !updated {
			return ErrBookingNotPayable
		}

		if target == entity.BookingStatusCancelled {
			if err := s.repo.BookedSeat.ReleaseByBooking(ctx, id); err != nil {
				return fmt.Errorf("release seats: %w", err)
			}
		}

		b.Status = target
		booking = b
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotPayable) {
			s.log.Warn("Payment rejected",
				zap.String("booking_id", id.String()),
				zap.String("user_id", userID.String()),
			)
			return nil, err
		}
		if errors.Is(err, ErrValidation) {
			s.log.Warn("Process payment validation failed", zap.Error(err))
			return nil, err
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		s.log.Error("Failed to process payment",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("process payment: %w", err)
	}

	metrics.PaymentOutcomes.WithLabelValues(req.PaymentStatus).Inc()

	evtType := event.TypeBookingPaid
	if target == entity.BookingStatusCancelled {
		s.cache.Invalidate(ctx, booking.ScheduleID)
		evtType = event.TypeBookingCancelled
	}
	if err := s.publisher.Publish(ctx, event.NewBookingEvent(evtType, booking, nil, s.clock.Now())); err != nil {
		s.log.Warn("Booking event not published",
			zap.String("type", string(evtType)),
			zap.String("booking_id", booking.ID.String()),
			zap.Error(err),
		)
	}

	s.log.Info("Payment processed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reservation_code", booking.ReservationCode),
		zap.String("outcome", req.PaymentStatus),
		zap.String("status", string(booking.Status)),
	)

	resp := response.PaymentToResponse(booking)
	return &resp, nil
}
