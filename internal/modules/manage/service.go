package manage

import (
	"context"
	"errors"
	"log"
	"time"

	"beautystudio/internal/domain"
	"beautystudio/internal/modules/availability"
	"beautystudio/internal/repository"

	"gorm.io/gorm"
)

// staffOnlyWindow is the cutoff before the appointment inside which clients
// can no longer self-serve; changes go through staff.
const staffOnlyWindow = 24 * time.Hour

// Flags describes what the client may still do with a booking at a given
// moment. WithinPolicyWindow only affects messaging: deposits are
// non-refundable in all cases.
type Flags struct {
	IsPast             bool `json:"is_past"`
	Within24h          bool `json:"within_24h"`
	WithinPolicyWindow bool `json:"within_policy_window"`
	CanReschedule      bool `json:"can_reschedule"`
	CanChangeService   bool `json:"can_change_service"`
	CanCancel          bool `json:"can_cancel"`
}

// Evaluate computes the management flags for a booking at time now.
func Evaluate(b *domain.Booking, now time.Time) Flags {
	f := Flags{}
	f.IsPast = !b.StartAt.After(now)
	f.Within24h = b.StartAt.Sub(now) < staffOnlyWindow
	f.WithinPolicyWindow = b.StartAt.Sub(now) < time.Duration(b.CancellationPolicyHours)*time.Hour

	confirmed := b.Status == domain.BookingConfirmed
	f.CanReschedule = !f.IsPast && !f.Within24h && confirmed
	f.CanChangeService = f.CanReschedule
	f.CanCancel = !f.IsPast && (confirmed || b.Status == domain.BookingPending)
	return f
}

type Service struct {
	bookings BookingRepository
	catalog  ServiceCatalog
	slots    SlotResolver
	notifs   Notifier

	now func() time.Time
}

func NewService(bookings BookingRepository, catalog ServiceCatalog, slots SlotResolver, notifs Notifier) *Service {
	return &Service{
		bookings: bookings,
		catalog:  catalog,
		slots:    slots,
		notifs:   notifs,
		now:      time.Now,
	}
}

func (s *Service) Get(ctx context.Context, token string) (*domain.Booking, Flags, error) {
	b, err := s.byToken(ctx, token)
	if err != nil {
		return nil, Flags{}, err
	}
	return b, Evaluate(b, s.now()), nil
}

// Reschedule moves a confirmed booking to a new slot. The target slot is
// re-validated against live availability at call time: a slot offered during
// an earlier read may be gone. Payment history and monetary fields are
// untouched.
func (s *Service) Reschedule(ctx context.Context, token, newDate, newSlot string) (*domain.Booking, error) {
	b, err := s.byToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !Evaluate(b, s.now()).CanReschedule {
		return nil, ErrForbidden
	}

	offered, err := s.slots.ListAvailableSlots(ctx, newDate)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDate) {
			return nil, ErrValidation
		}
		// Rules-store or ledger failure: retryable, not the client's fault.
		return nil, err
	}
	var startAt time.Time
	found := false
	for _, slot := range offered {
		if slot.Time == newSlot {
			startAt = slot.StartAt
			found = true
			break
		}
	}
	if !found {
		return nil, ErrSlotUnavailable
	}

	if err := s.bookings.UpdateSchedule(ctx, b.ID, newDate, newSlot, startAt); err != nil {
		if repository.IsUniqueViolation(err, "idx_no_double_booking") {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	updated, err := s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if err := s.notifs.SendRescheduleConfirmation(ctx, updated); err != nil {
		log.Printf("level=error msg=reschedule notification failed booking_id=%d err=%v", updated.ID, err)
	}
	return updated, nil
}

// ChangeService swaps the booked service, recomputing the final price from
// the new service while preserving the deposit and any applied discount.
func (s *Service) ChangeService(ctx context.Context, token string, newServiceID int64) (*domain.Booking, error) {
	b, err := s.byToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !Evaluate(b, s.now()).CanChangeService {
		return nil, ErrForbidden
	}

	svc, err := s.catalog.GetByID(ctx, newServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	finalPrice := svc.Price - b.Discount
	if finalPrice < 0 {
		finalPrice = 0
	}
	paidInFull := b.Deposit >= finalPrice

	if err := s.bookings.UpdateService(ctx, b.ID, svc.ID, finalPrice, paidInFull); err != nil {
		return nil, err
	}

	updated, err := s.bookings.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if err := s.notifs.SendRescheduleConfirmation(ctx, updated); err != nil {
		log.Printf("level=error msg=service change notification failed booking_id=%d err=%v", updated.ID, err)
	}
	return updated, nil
}

// Cancel transitions the booking to cancelled with a reason. The deposit is
// not refunded regardless of the policy window.
func (s *Service) Cancel(ctx context.Context, token, reason string) (*domain.Booking, error) {
	b, err := s.byToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !Evaluate(b, s.now()).CanCancel {
		return nil, ErrForbidden
	}

	if err := s.bookings.CancelWithReason(ctx, b.ID, reason); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, b.ID)
}

func (s *Service) byToken(ctx context.Context, token string) (*domain.Booking, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	b, err := s.bookings.GetByManageToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
