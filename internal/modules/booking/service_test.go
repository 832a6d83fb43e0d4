package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetDetails(ctx context.Context, bookingID int64) (*repository.BookingDetails, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) GetTurfOwnerForBooking(ctx context.Context, bookingID int64) (int64, string, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockBookingRepository) HasConfirmedConflict(ctx context.Context, turfID int64, slotID *int64, date time.Time, excludeID int64) (bool, error) {
	args := m.Called(ctx, turfID, slotID, date, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Approve(ctx context.Context, bookingID int64, approvedAt time.Time) (bool, error) {
	args := m.Called(ctx, bookingID, approvedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) RejectIfPending(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CancelIfNotConfirmed(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) FinalizeSuccess(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) FinalizeFailure(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ExpireIfUnpaid(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListPendingForOwner(ctx context.Context, ownerID int64) ([]repository.OwnerBookingRow, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OwnerBookingRow), args.Error(1)
}

func (m *MockBookingRepository) OwnerSummary(ctx context.Context, ownerID int64, from, to time.Time) ([]repository.OwnerBookingRow, float64, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.OwnerBookingRow), args.Get(1).(float64), args.Error(2)
}

func (m *MockBookingRepository) ListAwaitingPayment(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockTurfReader struct {
	mock.Mock
}

func (m *MockTurfReader) GetByID(ctx context.Context, id int64) (*domain.Turf, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turf), args.Error(1)
}

type MockSlotReader struct {
	mock.Mock
}

func (m *MockSlotReader) GetByID(ctx context.Context, id int64) (*domain.TurfSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurfSlot), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingRequested(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error {
	args := m.Called(ctx, ownerID, playerID, bookingID, turfName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingApproved(ctx context.Context, playerID, bookingID int64, turfName string, advance float64) error {
	args := m.Called(ctx, playerID, bookingID, turfName, advance)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingRejected(ctx context.Context, playerID, bookingID int64, turfName, reason string) error {
	args := m.Called(ctx, playerID, bookingID, turfName, reason)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingConfirmed(ctx context.Context, playerID, bookingID int64, turfName string) error {
	args := m.Called(ctx, playerID, bookingID, turfName)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCancelled(ctx context.Context, ownerID, playerID, bookingID int64, turfName string) error {
	args := m.Called(ctx, ownerID, playerID, bookingID, turfName)
	return args.Error(0)
}

type fakeScheduler struct {
	scheduled map[int64]time.Time
	cancelled map[int64]bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{
		scheduled: make(map[int64]time.Time),
		cancelled: make(map[int64]bool),
	}
}

func (f *fakeScheduler) Schedule(ctx context.Context, bookingID int64, fireAt time.Time) error {
	f.scheduled[bookingID] = fireAt
	return nil
}

func (f *fakeScheduler) Cancel(ctx context.Context, bookingID int64) {
	f.cancelled[bookingID] = true
}

type fakeMailer struct {
	approved  int
	confirmed int
	rejected  int
}

func (f *fakeMailer) BookingApproved(to, turfName string, advance float64, window time.Duration) {
	f.approved++
}
func (f *fakeMailer) BookingConfirmed(to, turfName string)                { f.confirmed++ }
func (f *fakeMailer) BookingRejected(to, turfName, reason string)         { f.rejected++ }

func testTurf() *domain.Turf {
	return &domain.Turf{ID: 10, OwnerID: 50, Name: "Greenfield Arena", PricePerHour: 1000}
}

func testDetails(bookingID int64) *repository.BookingDetails {
	return &repository.BookingDetails{
		ID:         bookingID,
		UserID:     7,
		UserEmail:  "player@example.com",
		TurfID:     10,
		TurfName:   "Greenfield Arena",
		OwnerID:    50,
		TotalPrice: 1000,
	}
}

func TestCreateBooking_SlotDerivedPrice(t *testing.T) {
	repo := new(MockBookingRepository)
	turfs := new(MockTurfReader)
	slots := new(MockSlotReader)

	slotID := int64(3)
	turfs.On("GetByID", mock.Anything, int64(10)).Return(testTurf(), nil)
	slots.On("GetByID", mock.Anything, slotID).Return(&domain.TurfSlot{
		ID: slotID, TurfID: 10, StartTime: "18:00", EndTime: "20:00", IsActive: true,
	}, nil)
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), &slotID, mock.Anything, int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := NewService(repo, turfs, slots, nil, nil, nil, 5*time.Minute)

	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	out, err := svc.CreateBooking(context.Background(), 7, CreateBookingRequest{
		TurfID: 10, SlotID: &slotID, Date: date,
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, out.DurationHours)
	assert.Equal(t, 2000.0, out.TotalPrice)
	assert.Equal(t, 1000.0, out.AdvanceAmount)
	assert.Equal(t, domain.BookingPending, out.BookingStatus)
	repo.AssertExpectations(t)
}

func TestCreateBooking_MinimumOneHour(t *testing.T) {
	repo := new(MockBookingRepository)
	turfs := new(MockTurfReader)
	slots := new(MockSlotReader)

	turfs.On("GetByID", mock.Anything, int64(10)).Return(testTurf(), nil)
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), (*int64)(nil), mock.Anything, int64(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	svc := NewService(repo, turfs, slots, nil, nil, nil, 5*time.Minute)

	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	out, err := svc.CreateBooking(context.Background(), 7, CreateBookingRequest{
		TurfID: 10, Date: date, StartTime: "18:00", EndTime: "18:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.DurationHours)
	assert.Equal(t, 1000.0, out.TotalPrice)
	assert.Equal(t, 500.0, out.AdvanceAmount)
}

func TestCreateBooking_PastDateRejected(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.CreateBooking(context.Background(), 7, CreateBookingRequest{
		TurfID: 10, Date: "2020-01-01", StartTime: "18:00", EndTime: "19:00",
	})

	assert.ErrorIs(t, err, ErrPastDate)
}

func TestCreateBooking_InactiveSlotRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	turfs := new(MockTurfReader)
	slots := new(MockSlotReader)

	slotID := int64(3)
	turfs.On("GetByID", mock.Anything, int64(10)).Return(testTurf(), nil)
	slots.On("GetByID", mock.Anything, slotID).Return(&domain.TurfSlot{
		ID: slotID, TurfID: 10, StartTime: "18:00", EndTime: "19:00", IsActive: false,
	}, nil)

	svc := NewService(repo, turfs, slots, nil, nil, nil, 5*time.Minute)

	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.CreateBooking(context.Background(), 7, CreateBookingRequest{
		TurfID: 10, SlotID: &slotID, Date: date,
	})

	assert.ErrorIs(t, err, ErrSlotInactive)
}

func TestCreateBooking_OverlappingPendingAllowed(t *testing.T) {
	// Two players request the same slot; only confirmed bookings block, so
	// both requests land as pending.
	repo := new(MockBookingRepository)
	turfs := new(MockTurfReader)
	slots := new(MockSlotReader)

	slotID := int64(3)
	turfs.On("GetByID", mock.Anything, int64(10)).Return(testTurf(), nil)
	slots.On("GetByID", mock.Anything, slotID).Return(&domain.TurfSlot{
		ID: slotID, TurfID: 10, StartTime: "18:00", EndTime: "19:00", IsActive: true,
	}, nil)
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), &slotID, mock.Anything, int64(0)).Return(false, nil).Twice()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil).Twice()

	svc := NewService(repo, turfs, slots, nil, nil, nil, 5*time.Minute)

	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	req := CreateBookingRequest{TurfID: 10, SlotID: &slotID, Date: date}

	_, err1 := svc.CreateBooking(context.Background(), 7, req)
	_, err2 := svc.CreateBooking(context.Background(), 8, req)

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	repo.AssertExpectations(t)
}

func TestCreateBooking_ConfirmedConflictRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	turfs := new(MockTurfReader)
	slots := new(MockSlotReader)

	slotID := int64(3)
	turfs.On("GetByID", mock.Anything, int64(10)).Return(testTurf(), nil)
	slots.On("GetByID", mock.Anything, slotID).Return(&domain.TurfSlot{
		ID: slotID, TurfID: 10, StartTime: "18:00", EndTime: "19:00", IsActive: true,
	}, nil)
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), &slotID, mock.Anything, int64(0)).Return(true, nil)

	svc := NewService(repo, turfs, slots, nil, nil, nil, 5*time.Minute)

	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.CreateBooking(context.Background(), 7, CreateBookingRequest{
		TurfID: 10, SlotID: &slotID, Date: date,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApprove_NonOwnerForbidden(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetTurfOwnerForBooking", mock.Anything, int64(999)).Return(int64(50), "pending", nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.Approve(context.Background(), 999, 51)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApprove_ConflictAutoRejects(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	mail := &fakeMailer{}

	slotID := int64(3)
	b := &domain.Booking{
		ID: 999, UserID: 7, TurfID: 10, SlotID: &slotID,
		Date:          domain.DateOnly(time.Now().AddDate(0, 0, 1)),
		BookingStatus: domain.BookingPending,
		TotalPrice:    1000,
	}
	rejected := *b
	rejected.BookingStatus = domain.BookingRejected

	repo.On("GetTurfOwnerForBooking", mock.Anything, int64(999)).Return(int64(50), "pending", nil)
	repo.On("GetByID", mock.Anything, int64(999)).Return(b, nil).Once()
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), &slotID, b.Date, int64(999)).Return(true, nil)
	repo.On("RejectIfPending", mock.Anything, int64(999)).Return(true, nil)
	repo.On("GetDetails", mock.Anything, int64(999)).Return(testDetails(999), nil)
	repo.On("GetByID", mock.Anything, int64(999)).Return(&rejected, nil)
	notifs.On("NotifyBookingRejected", mock.Anything, int64(7), int64(999), "Greenfield Arena", mock.Anything).Return(nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), notifs, mail, newFakeScheduler(), 5*time.Minute)

	out, err := svc.Approve(context.Background(), 999, 50)

	assert.NoError(t, err)
	assert.True(t, out.AutoRejected)
	assert.Equal(t, domain.BookingRejected, out.Booking.BookingStatus)
	assert.Equal(t, 1, mail.rejected)
	repo.AssertCalled(t, "RejectIfPending", mock.Anything, int64(999))
	repo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
}

func TestApprove_ArmsPaymentDeadline(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	mail := &fakeMailer{}
	sched := newFakeScheduler()

	slotID := int64(3)
	b := &domain.Booking{
		ID: 999, UserID: 7, TurfID: 10, SlotID: &slotID,
		Date:          domain.DateOnly(time.Now().AddDate(0, 0, 1)),
		BookingStatus: domain.BookingPending,
		TotalPrice:    1000,
	}
	approved := *b
	approved.BookingStatus = domain.BookingConfirmAfterPayment

	repo.On("GetTurfOwnerForBooking", mock.Anything, int64(999)).Return(int64(50), "pending", nil)
	repo.On("GetByID", mock.Anything, int64(999)).Return(b, nil).Once()
	repo.On("HasConfirmedConflict", mock.Anything, int64(10), &slotID, b.Date, int64(999)).Return(false, nil)
	repo.On("Approve", mock.Anything, int64(999), mock.AnythingOfType("time.Time")).Return(true, nil)
	repo.On("GetDetails", mock.Anything, int64(999)).Return(testDetails(999), nil)
	repo.On("GetByID", mock.Anything, int64(999)).Return(&approved, nil)
	notifs.On("NotifyBookingApproved", mock.Anything, int64(7), int64(999), "Greenfield Arena", 500.0).Return(nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), notifs, mail, sched, 5*time.Minute)

	out, err := svc.Approve(context.Background(), 999, 50)

	assert.NoError(t, err)
	assert.False(t, out.AutoRejected)
	assert.Equal(t, domain.BookingConfirmAfterPayment, out.Booking.BookingStatus)
	assert.Equal(t, 1, mail.approved)

	fireAt, armed := sched.scheduled[999]
	assert.True(t, armed)
	assert.InDelta(t, 5*time.Minute, time.Until(fireAt), float64(5*time.Second))
}

func TestApprove_NotPending(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetTurfOwnerForBooking", mock.Anything, int64(999)).Return(int64(50), "confirmed", nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.Approve(context.Background(), 999, 50)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_ConfirmedStaysPut(t *testing.T) {
	repo := new(MockBookingRepository)
	b := &domain.Booking{ID: 999, UserID: 7, BookingStatus: domain.BookingConfirmed}

	repo.On("GetByID", mock.Anything, int64(999)).Return(b, nil)
	repo.On("CancelIfNotConfirmed", mock.Anything, int64(999)).Return(false, nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.Cancel(context.Background(), 999, 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmPaid_Idempotent(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	mail := &fakeMailer{}
	sched := newFakeScheduler()

	repo.On("FinalizeSuccess", mock.Anything, int64(999)).Return(true, nil).Once()
	repo.On("FinalizeSuccess", mock.Anything, int64(999)).Return(false, nil)
	repo.On("GetDetails", mock.Anything, int64(999)).Return(testDetails(999), nil)
	notifs.On("NotifyBookingConfirmed", mock.Anything, int64(7), int64(999), "Greenfield Arena").Return(nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), notifs, mail, sched, 5*time.Minute)

	ok, err := svc.ConfirmPaid(context.Background(), 999)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ConfirmPaid(context.Background(), 999)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 1, mail.confirmed)
	assert.True(t, sched.cancelled[999])
}

func TestExpireUnpaid_NoopWhenAlreadyPaid(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)

	repo.On("ExpireIfUnpaid", mock.Anything, int64(999)).Return(false, nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), notifs, nil, nil, 5*time.Minute)
	svc.ExpireUnpaid(context.Background(), 999)

	notifs.AssertNotCalled(t, "NotifyBookingRejected", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExpireUnpaid_RejectsAndNotifies(t *testing.T) {
	repo := new(MockBookingRepository)
	notifs := new(MockNotificationSender)
	mail := &fakeMailer{}

	repo.On("ExpireIfUnpaid", mock.Anything, int64(999)).Return(true, nil)
	repo.On("GetDetails", mock.Anything, int64(999)).Return(testDetails(999), nil)
	notifs.On("NotifyBookingRejected", mock.Anything, int64(7), int64(999), "Greenfield Arena", mock.Anything).Return(nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), notifs, mail, nil, 5*time.Minute)
	svc.ExpireUnpaid(context.Background(), 999)

	notifs.AssertExpectations(t)
	assert.Equal(t, 1, mail.rejected)
}

func TestSweepAwaitingPayment(t *testing.T) {
	repo := new(MockBookingRepository)
	sched := newFakeScheduler()

	stale := time.Now().Add(-10 * time.Minute)
	fresh := time.Now().Add(-1 * time.Minute)
	rows := []domain.Booking{
		{ID: 1, BookingStatus: domain.BookingConfirmAfterPayment, ApprovedAt: &stale},
		{ID: 2, BookingStatus: domain.BookingConfirmAfterPayment, ApprovedAt: &fresh},
	}

	repo.On("ListAwaitingPayment", mock.Anything).Return(rows, nil)
	repo.On("ExpireIfUnpaid", mock.Anything, int64(1)).Return(true, nil)
	repo.On("GetDetails", mock.Anything, int64(1)).Return(testDetails(1), nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, sched, 5*time.Minute)

	err := svc.SweepAwaitingPayment(context.Background())
	assert.NoError(t, err)

	repo.AssertCalled(t, "ExpireIfUnpaid", mock.Anything, int64(1))
	_, rearmed := sched.scheduled[2]
	assert.True(t, rearmed)
	_, expiredArmed := sched.scheduled[1]
	assert.False(t, expiredArmed)
}

func TestOwnerSummary_InvalidRange(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.OwnerSummary(context.Background(), 50, "", "2026-02-01", "2026-01-01")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOwnerSummary_DefaultsToToday(t *testing.T) {
	repo := new(MockBookingRepository)
	today := domain.DateOnly(time.Now())
	repo.On("OwnerSummary", mock.Anything, int64(50), today, today).
		Return([]repository.OwnerBookingRow{}, 0.0, nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	out, err := svc.OwnerSummary(context.Background(), 50, "", "", "")

	assert.NoError(t, err)
	assert.Equal(t, today.Format("2006-01-02"), out.From)
	assert.Equal(t, today.Format("2006-01-02"), out.To)
	repo.AssertExpectations(t)
}

func TestOwnerSummary_YesterdayFilter(t *testing.T) {
	repo := new(MockBookingRepository)
	yesterday := domain.DateOnly(time.Now().AddDate(0, 0, -1))
	repo.On("OwnerSummary", mock.Anything, int64(50), yesterday, yesterday).
		Return([]repository.OwnerBookingRow{}, 0.0, nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	out, err := svc.OwnerSummary(context.Background(), 50, "yesterday", "", "")

	assert.NoError(t, err)
	assert.Equal(t, yesterday.Format("2006-01-02"), out.From)
}

func TestOwnerSummary_MonthFilter(t *testing.T) {
	repo := new(MockBookingRepository)
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	repo.On("OwnerSummary", mock.Anything, int64(50), first, domain.DateOnly(now)).
		Return([]repository.OwnerBookingRow{}, 2000.0, nil)

	svc := NewService(repo, new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	out, err := svc.OwnerSummary(context.Background(), 50, "month", "", "")

	assert.NoError(t, err)
	assert.Equal(t, first.Format("2006-01-02"), out.From)
	assert.Equal(t, 2000.0, out.TotalIncome)
}

func TestOwnerSummary_UnknownFilter(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockTurfReader), new(MockSlotReader), nil, nil, nil, 5*time.Minute)

	_, err := svc.OwnerSummary(context.Background(), 50, "fortnight", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}
