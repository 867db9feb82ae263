package availability

import (
	"context"
	"log"
	"time"

	"beautystudio/internal/domain"
	"beautystudio/internal/integrations/calendar"
)

// defaultRangeDays is the forward horizon for the date list when no explicit
// range is requested; maxRangeDays caps explicit ranges.
const (
	defaultRangeDays = 14
	maxRangeDays     = 60
)

type Service struct {
	rules    ScheduleStore
	bookings BookingLedger
	cal      CalendarGateway

	now func() time.Time
}

func NewService(rules ScheduleStore, bookings BookingLedger, cal CalendarGateway) *Service {
	return &Service{
		rules:    rules,
		bookings: bookings,
		cal:      cal,
		now:      time.Now,
	}
}

// ListAvailableDates returns the bookable dates in the requested range
// (default: today through today+14). It deliberately skips the external
// calendar and per-slot conflicts to stay fast; slot-level filtering happens
// in ListAvailableSlots.
func (s *Service) ListAvailableDates(ctx context.Context, from, to string) ([]DateOption, error) {
	rules, err := s.rules.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := domain.BusinessToday(s.now())

	start := today
	if from != "" {
		d, err := domain.ParseBusinessDate(from)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if d.After(start) {
			start = d
		}
	}

	end := today.AddDate(0, 0, defaultRangeDays)
	if to != "" {
		d, err := domain.ParseBusinessDate(to)
		if err != nil {
			return nil, ErrInvalidDate
		}
		end = d
	}
	if cap := today.AddDate(0, 0, maxRangeDays); end.After(cap) {
		end = cap
	}

	// Clip to the admin booking window and the minimum booking date floor.
	if rules.MinBookingDate != "" {
		if d, err := domain.ParseBusinessDate(rules.MinBookingDate); err == nil && d.After(start) {
			start = d
		}
	}
	if rules.Window != nil {
		if rules.Window.Start != "" {
			if d, err := domain.ParseBusinessDate(rules.Window.Start); err == nil && d.After(start) {
				start = d
			}
		}
		if rules.Window.End != "" {
			if d, err := domain.ParseBusinessDate(rules.Window.End); err == nil && d.Before(end) {
				end = d
			}
		}
	}

	out := make([]DateOption, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(domain.DateLayout)
		if rules.IsFullyBooked(dateStr) {
			continue
		}
		if !rules.Hours.DayEnabled(d.Weekday()) {
			continue
		}
		out = append(out, DateOption{
			Date:  dateStr,
			Label: d.Format("Monday, 2 January"),
		})
	}
	return out, nil
}

// ListAvailableSlots returns the slots still safe to reserve on a date at
// the moment of the call. Apart from a malformed date it never fails: a
// calendar gateway outage degrades to "no known conflicts".
func (s *Service) ListAvailableSlots(ctx context.Context, dateStr string) ([]SlotOption, error) {
	day, err := domain.ParseBusinessDate(dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}

	rules, err := s.rules.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.BusinessToday(now)

	if rules.IsFullyBooked(dateStr) {
		return []SlotOption{}, nil
	}
	// Weekday derived from the business timezone, never the host offset.
	weekday := day.Weekday()
	if !rules.Hours.DayEnabled(weekday) {
		return []SlotOption{}, nil
	}
	if day.Before(today) {
		return []SlotOption{}, nil
	}
	if !s.withinWindow(rules, day) {
		return []SlotOption{}, nil
	}

	templates := rules.TemplatesFor(weekday)

	busy, err := s.cal.GetBusyIntervals(ctx, dateStr)
	if err != nil {
		log.Printf("level=warn msg=calendar gateway failed, assuming no conflicts date=%s err=%v", dateStr, err)
		busy = nil
	}

	taken, err := s.bookings.TakenSlots(ctx, dateStr)
	if err != nil {
		return nil, err
	}
	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	isToday := day.Equal(today)

	out := make([]SlotOption, 0, len(templates))
	for _, tmpl := range templates {
		startAt := tmpl.At(day)

		if busyAt(busy, startAt) {
			continue
		}
		// Ledger is authoritative even when the calendar lags.
		if takenSet[tmpl.TimeString()] {
			continue
		}
		if startAt.Sub(now) < rules.MinAdvanceNotice {
			continue
		}
		if isToday && !startAt.After(now) {
			continue
		}

		out = append(out, SlotOption{
			Time:    tmpl.TimeString(),
			Label:   tmpl.Label,
			StartAt: startAt,
		})
	}
	return out, nil
}

func (s *Service) withinWindow(rules *domain.ScheduleRules, day time.Time) bool {
	if rules.MinBookingDate != "" {
		if d, err := domain.ParseBusinessDate(rules.MinBookingDate); err == nil && day.Before(d) {
			return false
		}
	}
	if rules.Window == nil {
		return true
	}
	if rules.Window.Start != "" {
		if d, err := domain.ParseBusinessDate(rules.Window.Start); err == nil && day.Before(d) {
			return false
		}
	}
	if rules.Window.End != "" {
		if d, err := domain.ParseBusinessDate(rules.Window.End); err == nil && day.After(d) {
			return false
		}
	}
	return true
}

func busyAt(busy []calendar.Interval, ts time.Time) bool {
	for _, iv := range busy {
		if iv.Contains(ts) {
			return true
		}
	}
	return false
}
