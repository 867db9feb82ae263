package booking

import (
	"context"

	"beautystudio/internal/domain"
	"beautystudio/internal/modules/availability"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
}

type ServiceCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.StudioService, error)
}

type ScheduleStore interface {
	Load(ctx context.Context) (*domain.ScheduleRules, error)
}

// SlotResolver re-checks a requested slot against live availability right
// before the insert.
type SlotResolver interface {
	ListAvailableSlots(ctx context.Context, date string) ([]availability.SlotOption, error)
}
