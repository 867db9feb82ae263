package booking

import (
	"context"
	"errors"

	"beautystudio/internal/domain"
	"beautystudio/internal/modules/availability"
	"beautystudio/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	catalog  ServiceCatalog
	rules    ScheduleStore
	slots    SlotResolver
}

func NewService(bookings BookingRepository, catalog ServiceCatalog, rules ScheduleStore, slots SlotResolver) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		rules:    rules,
		slots:    slots,
	}
}

// Reserve creates a pending booking at the requested slot. The availability
// read and the insert are two separate steps, so the insert relies on the
// ledger's unique slot index as the final arbiter: of N concurrent reserves
// for one slot exactly one survives, the rest get ErrSlotTaken.
func (s *Service) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	offered, err := s.slots.ListAvailableSlots(ctx, req.Date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDate) {
			return nil, ErrValidation
		}
		// Rules-store or ledger failure: retryable, not the client's fault.
		return nil, err
	}

	match := -1
	for i, slot := range offered {
		if slot.Time == req.SlotTime {
			match = i
			break
		}
	}
	if match == -1 {
		return nil, ErrSlotNotOffered
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	rules, err := s.rules.Load(ctx)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ClientName:              req.ClientName,
		ClientEmail:             req.ClientEmail,
		ClientPhone:             req.ClientPhone,
		ServiceID:               svc.ID,
		Date:                    req.Date,
		SlotTime:                req.SlotTime,
		StartAt:                 offered[match].StartAt,
		FinalPrice:              svc.Price,
		Status:                  domain.BookingPending,
		CancellationPolicyHours: rules.CancellationPolicyHours,
		ManageToken:             uuid.NewString(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err, "idx_no_double_booking") {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	return b, nil
}
