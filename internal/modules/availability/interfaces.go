package availability

import (
	"context"

	"beautystudio/internal/domain"
	"beautystudio/internal/integrations/calendar"
)

// ScheduleStore loads a fresh rules snapshot per request.
type ScheduleStore interface {
	Load(ctx context.Context) (*domain.ScheduleRules, error)
}

// BookingLedger exposes the authoritative taken-slot view.
type BookingLedger interface {
	TakenSlots(ctx context.Context, date string) ([]string, error)
}

// CalendarGateway queries the external studio calendar. Errors are absorbed
// by the resolver, never surfaced.
type CalendarGateway interface {
	GetBusyIntervals(ctx context.Context, date string) ([]calendar.Interval, error)
}
