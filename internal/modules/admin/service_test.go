package admin

import (
	"context"
	"testing"

	"beautystudio/internal/domain"
	"beautystudio/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScheduleStore struct {
	mock.Mock
}

func (m *MockScheduleStore) Load(ctx context.Context) (*domain.ScheduleRules, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScheduleRules), args.Error(1)
}

func (m *MockScheduleStore) Save(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func TestSaveBusinessHours(t *testing.T) {
	mockRules := new(MockScheduleStore)
	mockRules.On("Save", mock.Anything, repository.KeyBusinessHours, mock.Anything).Return(nil)
	service := NewService(mockRules)

	err := service.SaveBusinessHours(context.Background(), domain.BusinessHours{
		"saturday": {Enabled: true},
	})
	assert.NoError(t, err)

	err = service.SaveBusinessHours(context.Background(), domain.BusinessHours{
		"caturday": {Enabled: true},
	})
	assert.ErrorIs(t, err, ErrValidation)

	// The shared template bucket is not a business-hours key.
	err = service.SaveBusinessHours(context.Background(), domain.BusinessHours{
		"weekday": {Enabled: true},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveSlotTemplates(t *testing.T) {
	mockRules := new(MockScheduleStore)
	mockRules.On("Save", mock.Anything, repository.KeySlotTemplates, mock.Anything).Return(nil)
	service := NewService(mockRules)

	err := service.SaveSlotTemplates(context.Background(), domain.SlotTemplates{
		"weekday": {{Hour: 9, Minute: 30, Label: "Morning"}},
		"sunday":  {{Hour: 11, Minute: 0, Label: "Morning"}},
	})
	assert.NoError(t, err)

	err = service.SaveSlotTemplates(context.Background(), domain.SlotTemplates{
		"monday": {{Hour: 24, Minute: 0}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveBookingWindow(t *testing.T) {
	mockRules := new(MockScheduleStore)
	mockRules.On("Save", mock.Anything, repository.KeyBookingWindow, mock.Anything).Return(nil)
	service := NewService(mockRules)

	err := service.SaveBookingWindow(context.Background(), domain.BookingWindow{
		Start: "2025-03-01", End: "2025-03-31",
	})
	assert.NoError(t, err)

	err = service.SaveBookingWindow(context.Background(), domain.BookingWindow{
		Start: "2025-03-31", End: "2025-03-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	err = service.SaveBookingWindow(context.Background(), domain.BookingWindow{Start: "soon"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveBookingPolicies(t *testing.T) {
	mockRules := new(MockScheduleStore)
	mockRules.On("Save", mock.Anything, repository.KeyBookingPolicies, mock.Anything).Return(nil)
	service := NewService(mockRules)

	err := service.SaveBookingPolicies(context.Background(), repository.BookingPolicies{
		MinAdvanceNoticeHours:   24,
		CancellationPolicyHours: 48,
	})
	assert.NoError(t, err)

	err = service.SaveBookingPolicies(context.Background(), repository.BookingPolicies{
		MinAdvanceNoticeHours: -1,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveFullyBookedDates(t *testing.T) {
	mockRules := new(MockScheduleStore)
	mockRules.On("Save", mock.Anything, repository.KeyFullyBookedDates, mock.Anything).Return(nil)
	service := NewService(mockRules)

	err := service.SaveFullyBookedDates(context.Background(), []string{"2025-03-05", "2025-03-06"})
	assert.NoError(t, err)

	err = service.SaveFullyBookedDates(context.Background(), []string{"2025-03-05", "tomorrow"})
	assert.ErrorIs(t, err, ErrValidation)
}
