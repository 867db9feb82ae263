package manage

import (
	"context"
	"time"

	"beautystudio/internal/domain"
	"beautystudio/internal/modules/availability"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByManageToken(ctx context.Context, token string) (*domain.Booking, error)
	UpdateSchedule(ctx context.Context, bookingID int64, date, slotTime string, startAt time.Time) error
	UpdateService(ctx context.Context, bookingID, serviceID int64, finalPrice float64, paidInFull bool) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
}

type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.StudioService, error)
}

type SlotResolver interface {
	ListAvailableSlots(ctx context.Context, date string) ([]availability.SlotOption, error)
}

type Notifier interface {
	SendRescheduleConfirmation(ctx context.Context, b *domain.Booking) error
}
