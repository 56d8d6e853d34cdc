package usecase

import (
	"context"
	"testing"
	"time"

	"bioskop-ticket/internal/data/entity"
	"bioskop-ticket/internal/data/repository"
	"bioskop-ticket/internal/event"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// ==================== REPOSITORY MOCKS ====================

type mockFilmRepo struct{ mock.Mock }

func (m *mockFilmRepo) FindShowing(ctx context.Context, offset, limit int) ([]*entity.Film, error) {
	args := m.Called(ctx, offset, limit)
	films, _ := args.Get(0).([]*entity.Film)
	return films, args.Error(1)
}

func (m *mockFilmRepo) CountShowing(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFilmRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error) {
	args := m.Called(ctx, id)
	film, _ := args.Get(0).(*entity.Film)
	return film, args.Error(1)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) FindUpcomingByFilm(ctx context.Context, filmID uuid.UUID, fromDate time.Time) ([]*entity.ScheduleDetail, error) {
	args := m.Called(ctx, filmID, fromDate)
	schedules, _ := args.Get(0).([]*entity.ScheduleDetail)
	return schedules, args.Error(1)
}

func (m *mockScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScheduleDetail, error) {
	args := m.Called(ctx, id)
	schedule, _ := args.Get(0).(*entity.ScheduleDetail)
	return schedule, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.BookingDetail)
	return d, args.Error(1)
}

func (m *mockBookingRepo) FindDetailsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, userID, offset, limit)
	d, _ := args.Get(0).([]*entity.BookingDetail)
	return d, args.Error(1)
}

func (m *mockBookingRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

type mockBookedSeatRepo struct{ mock.Mock }

func (m *mockBookedSeatRepo) FindHeldIdentifiers(ctx context.Context, scheduleID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, scheduleID)
	seats, _ := args.Get(0).([]string)
	return seats, args.Error(1)
}

func (m *mockBookedSeatRepo) FindConflicts(ctx context.Context, scheduleID uuid.UUID, seats []string) ([]string, error) {
	args := m.Called(ctx, scheduleID, seats)
	conflicts, _ := args.Get(0).([]string)
	return conflicts, args.Error(1)
}

func (m *mockBookedSeatRepo) CreateBatch(ctx context.Context, seats []*entity.BookedSeat) error {
	return m.Called(ctx, seats).Error(0)
}

func (m *mockBookedSeatRepo) ReleaseByBooking(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *mockBookedSeatRepo) FindIdentifiersByBookings(ctx context.Context, bookingIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	args := m.Called(ctx, bookingIDs)
	result, _ := args.Get(0).(map[uuid.UUID][]string)
	return result, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

// fakeTx runs fn inline and records whether the transaction would have committed.
type fakeTx struct {
	calls     int
	committed int
}

func (f *fakeTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	f.committed++
	return nil
}

// ==================== SIDE-CHANNEL MOCKS ====================

type mockSeatCache struct{ mock.Mock }

func (m *mockSeatCache) Get(ctx context.Context, scheduleID uuid.UUID) ([]string, int64, bool) {
	args := m.Called(ctx, scheduleID)
	seats, _ := args.Get(0).([]string)
	return seats, args.Get(1).(int64), args.Bool(2)
}

func (m *mockSeatCache) Set(ctx context.Context, scheduleID uuid.UUID, version int64, seats []string) {
	m.Called(ctx, scheduleID, version, seats)
}

func (m *mockSeatCache) Invalidate(ctx context.Context, scheduleID uuid.UUID) {
	m.Called(ctx, scheduleID)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, evt event.BookingEvent) error {
	return m.Called(ctx, evt).Error(0)
}

func (m *mockPublisher) Close() error { return nil }

// ==================== FIXTURES ====================

type testRepos struct {
	repo       *repository.Repository
	tx         *fakeTx
	film       *mockFilmRepo
	schedule   *mockScheduleRepo
	booking    *mockBookingRepo
	bookedSeat *mockBookedSeatRepo
	user       *mockUserRepo
	session    *mockSessionRepo
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	r := &testRepos{
		tx:         &fakeTx{},
		film:       &mockFilmRepo{},
		schedule:   &mockScheduleRepo{},
		booking:    &mockBookingRepo{},
		bookedSeat: &mockBookedSeatRepo{},
		user:       &mockUserRepo{},
		session:    &mockSessionRepo{},
	}
	r.repo = &repository.Repository{
		Tx:         r.tx,
		Film:       r.film,
		Schedule:   r.schedule,
		Booking:    r.booking,
		BookedSeat: r.bookedSeat,
		User:       r.user,
		Session:    r.session,
	}
	t.Cleanup(func() {
		r.film.AssertExpectations(t)
		r.schedule.AssertExpectations(t)
		r.booking.AssertExpectations(t)
		r.bookedSeat.AssertExpectations(t)
		r.user.AssertExpectations(t)
		r.session.AssertExpectations(t)
	})
	return r
}

func newTestLogger() *zap.Logger {
	return zap.NewNop()
}

func testSchedule(price string, capacity int) *entity.ScheduleDetail {
	filmID := uuid.New()
	studioID := uuid.New()
	return &entity.ScheduleDetail{
		Schedule: entity.Schedule{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
			FilmID:       filmID,
			StudioID:     studioID,
			ShowDate:     time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
			StartTime:    "19:30",
			TicketPrice:  decimal.RequireFromString(price),
		},
		Film: entity.Film{
			BaseNoDelete:    entity.BaseNoDelete{ID: filmID},
			Title:           "Pengabdi Setan",
			DurationMinutes: 107,
			NowShowing:      true,
		},
		Studio: entity.Studio{
			BaseNoDelete: entity.BaseNoDelete{ID: studioID},
			Name:         "Studio 1",
			Capacity:     capacity,
		},
	}
}
