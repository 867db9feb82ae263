package manage

import (
	"context"
	"errors"
	"testing"
	"time"

	"beautystudio/internal/domain"
	"beautystudio/internal/modules/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock dependencies
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByManageToken(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateSchedule(ctx context.Context, bookingID int64, date, slotTime string, startAt time.Time) error {
	args := m.Called(ctx, bookingID, date, slotTime, startAt)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateService(ctx context.Context, bookingID, serviceID int64, finalPrice float64, paidInFull bool) error {
	args := m.Called(ctx, bookingID, serviceID, finalPrice, paidInFull)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

type MockServiceCatalog struct {
	mock.Mock
}

func (m *MockServiceCatalog) GetByID(ctx context.Context, id int64) (*domain.StudioService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudioService), args.Error(1)
}

type MockSlotResolver struct {
	mock.Mock
}

func (m *MockSlotResolver) ListAvailableSlots(ctx context.Context, date string) ([]availability.SlotOption, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.SlotOption), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRescheduleConfirmation(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

const token = "4b8c3a2e-manage-token"

var testNow = time.Date(2025, 3, 3, 9, 0, 0, 0, domain.BusinessLocation())

func confirmedBooking(startAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:                      42,
		ClientEmail:             "wanjiru@example.com",
		ServiceID:               3,
		Date:                    startAt.Format(domain.DateLayout),
		SlotTime:                startAt.Format("15:04"),
		StartAt:                 startAt,
		FinalPrice:              3000,
		Deposit:                 1500,
		Status:                  domain.BookingConfirmed,
		CancellationPolicyHours: 48,
		ManageToken:             token,
	}
}

func newTestService(b *domain.Booking) (*Service, *MockBookingRepository, *MockServiceCatalog, *MockSlotResolver, *MockNotifier) {
	mockBookings := new(MockBookingRepository)
	if b != nil {
		mockBookings.On("GetByManageToken", mock.Anything, token).Return(b, nil)
	}
	mockCatalog := new(MockServiceCatalog)
	mockSlots := new(MockSlotResolver)
	mockNotifs := new(MockNotifier)

	svc := NewService(mockBookings, mockCatalog, mockSlots, mockNotifs)
	svc.now = func() time.Time { return testNow }
	return svc, mockBookings, mockCatalog, mockSlots, mockNotifs
}

func TestEvaluate_Flags(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))

	f := Evaluate(b, testNow)
	assert.False(t, f.IsPast)
	assert.False(t, f.Within24h)
	assert.False(t, f.WithinPolicyWindow)
	assert.True(t, f.CanReschedule)
	assert.True(t, f.CanChangeService)
	assert.True(t, f.CanCancel)

	// Inside the policy window but outside 24h: cancel allowed, reschedule too.
	f = Evaluate(confirmedBooking(testNow.Add(30*time.Hour)), testNow)
	assert.True(t, f.WithinPolicyWindow)
	assert.False(t, f.Within24h)
	assert.True(t, f.CanReschedule)

	// Inside 24h: staff-only.
	f = Evaluate(confirmedBooking(testNow.Add(23*time.Hour+59*time.Minute)), testNow)
	assert.True(t, f.Within24h)
	assert.False(t, f.CanReschedule)
	assert.False(t, f.CanChangeService)
	assert.True(t, f.CanCancel)

	// Past appointment: nothing allowed.
	f = Evaluate(confirmedBooking(testNow.Add(-time.Hour)), testNow)
	assert.True(t, f.IsPast)
	assert.False(t, f.CanReschedule)
	assert.False(t, f.CanCancel)

	// Cancelled bookings cannot be cancelled again.
	b = confirmedBooking(testNow.Add(72 * time.Hour))
	b.Status = domain.BookingCancelled
	f = Evaluate(b, testNow)
	assert.False(t, f.CanCancel)
	assert.False(t, f.CanReschedule)
}

func TestReschedule_Success(t *testing.T) {
	// 25h out: just past the staff-only cutoff.
	b := confirmedBooking(testNow.Add(25 * time.Hour))
	svc, mockBookings, _, mockSlots, mockNotifs := newTestService(b)

	newStart := time.Date(2025, 3, 10, 14, 0, 0, 0, domain.BusinessLocation())
	mockSlots.On("ListAvailableSlots", mock.Anything, "2025-03-10").Return([]availability.SlotOption{
		{Time: "14:00", StartAt: newStart},
	}, nil)
	mockBookings.On("UpdateSchedule", mock.Anything, int64(42), "2025-03-10", "14:00", newStart).Return(nil)

	moved := confirmedBooking(newStart)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(moved, nil)
	mockNotifs.On("SendRescheduleConfirmation", mock.Anything, moved).Return(nil)

	updated, err := svc.Reschedule(context.Background(), token, "2025-03-10", "14:00")

	assert.NoError(t, err)
	// Monetary fields ride along untouched.
	assert.Equal(t, 1500.0, updated.Deposit)
	assert.Equal(t, 3000.0, updated.FinalPrice)
	mockBookings.AssertExpectations(t)
	mockNotifs.AssertExpectations(t)
}

func TestReschedule_StaffOnlyWindow(t *testing.T) {
	b := confirmedBooking(testNow.Add(23 * time.Hour))
	svc, mockBookings, _, _, _ := newTestService(b)

	_, err := svc.Reschedule(context.Background(), token, "2025-03-10", "14:00")

	assert.ErrorIs(t, err, ErrForbidden)
	mockBookings.AssertNotCalled(t, "UpdateSchedule",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReschedule_TargetSlotGone(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	svc, _, _, mockSlots, _ := newTestService(b)

	mockSlots.On("ListAvailableSlots", mock.Anything, "2025-03-10").Return([]availability.SlotOption{
		{Time: "16:00", StartAt: time.Date(2025, 3, 10, 16, 0, 0, 0, domain.BusinessLocation())},
	}, nil)

	_, err := svc.Reschedule(context.Background(), token, "2025-03-10", "14:00")

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestReschedule_AvailabilityStorageFailure(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	svc, mockBookings, _, mockSlots, _ := newTestService(b)

	// Availability read failing for infrastructure reasons is not the
	// client's fault: the error must pass through untouched.
	storeErr := errors.New("db down")
	mockSlots.On("ListAvailableSlots", mock.Anything, "2025-03-10").Return(nil, storeErr)

	_, err := svc.Reschedule(context.Background(), token, "2025-03-10", "14:00")

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "UpdateSchedule",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReschedule_InvalidTargetDate(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	svc, _, _, mockSlots, _ := newTestService(b)

	mockSlots.On("ListAvailableSlots", mock.Anything, "10-03-2025").Return(nil, availability.ErrInvalidDate)

	_, err := svc.Reschedule(context.Background(), token, "10-03-2025", "14:00")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestChangeService_RecomputesPrice(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	b.Discount = 500
	svc, mockBookings, mockCatalog, _, mockNotifs := newTestService(b)

	mockCatalog.On("GetByID", mock.Anything, int64(5)).Return(&domain.StudioService{
		ID: 5, Name: "Gel manicure", Price: 2500,
	}, nil)
	// New final price 2500-500=2000; deposit 1500 does not cover it.
	mockBookings.On("UpdateService", mock.Anything, int64(42), int64(5), 2000.0, false).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	mockNotifs.On("SendRescheduleConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ChangeService(context.Background(), token, 5)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestChangeService_CheaperServiceMarksPaidInFull(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	svc, mockBookings, mockCatalog, _, mockNotifs := newTestService(b)

	mockCatalog.On("GetByID", mock.Anything, int64(6)).Return(&domain.StudioService{
		ID: 6, Name: "Eyebrow shaping", Price: 800,
	}, nil)
	mockBookings.On("UpdateService", mock.Anything, int64(42), int64(6), 800.0, true).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)
	mockNotifs.On("SendRescheduleConfirmation", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.ChangeService(context.Background(), token, 6)

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestChangeService_UnknownService(t *testing.T) {
	b := confirmedBooking(testNow.Add(72 * time.Hour))
	svc, _, mockCatalog, _, _ := newTestService(b)

	mockCatalog.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ChangeService(context.Background(), token, 99)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCancel_PendingBookingInside24h(t *testing.T) {
	// Cancellation stays open inside the staff-only window.
	b := confirmedBooking(testNow.Add(2 * time.Hour))
	b.Status = domain.BookingPending
	svc, mockBookings, _, _, _ := newTestService(b)

	cancelled := confirmedBooking(testNow.Add(2 * time.Hour))
	cancelled.Status = domain.BookingCancelled
	mockBookings.On("CancelWithReason", mock.Anything, int64(42), "sick").Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil)

	updated, err := svc.Cancel(context.Background(), token, "sick")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, updated.Status)
}

func TestCancel_PastBooking(t *testing.T) {
	b := confirmedBooking(testNow.Add(-time.Hour))
	svc, _, _, _, _ := newTestService(b)

	_, err := svc.Cancel(context.Background(), token, "late")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGet_UnknownToken(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByManageToken", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(mockBookings, new(MockServiceCatalog), new(MockSlotResolver), new(MockNotifier))

	_, _, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}
