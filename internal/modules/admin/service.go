package admin

import (
	"context"
	"fmt"

	"beautystudio/internal/domain"
	"beautystudio/internal/repository"
)

type ScheduleStore interface {
	Load(ctx context.Context) (*domain.ScheduleRules, error)
	Save(ctx context.Context, key string, value any) error
}

// Service is the admin surface over the schedule rule documents. Writes are
// rare and admin-driven; readers pick up changes on their next Load, no
// cache invalidation involved.
type Service struct {
	rules ScheduleStore
}

func NewService(rules ScheduleStore) *Service {
	return &Service{rules: rules}
}

func (s *Service) GetRules(ctx context.Context) (*domain.ScheduleRules, error) {
	return s.rules.Load(ctx)
}

func (s *Service) SaveBusinessHours(ctx context.Context, hours domain.BusinessHours) error {
	for key := range hours {
		if !validDayKey(key, false) {
			return fmt.Errorf("%w: unknown weekday %q", ErrValidation, key)
		}
	}
	return s.rules.Save(ctx, repository.KeyBusinessHours, hours)
}

func (s *Service) SaveSlotTemplates(ctx context.Context, templates domain.SlotTemplates) error {
	for key, slots := range templates {
		if !validDayKey(key, true) {
			return fmt.Errorf("%w: unknown template bucket %q", ErrValidation, key)
		}
		for _, t := range slots {
			if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
				return fmt.Errorf("%w: slot %02d:%02d out of range", ErrValidation, t.Hour, t.Minute)
			}
		}
	}
	return s.rules.Save(ctx, repository.KeySlotTemplates, templates)
}

func (s *Service) SaveBookingWindow(ctx context.Context, w domain.BookingWindow) error {
	var start, end string
	if w.Start != "" {
		d, err := domain.ParseBusinessDate(w.Start)
		if err != nil {
			return fmt.Errorf("%w: bad window start", ErrValidation)
		}
		start = d.Format(domain.DateLayout)
	}
	if w.End != "" {
		d, err := domain.ParseBusinessDate(w.End)
		if err != nil {
			return fmt.Errorf("%w: bad window end", ErrValidation)
		}
		end = d.Format(domain.DateLayout)
	}
	if start != "" && end != "" && end < start {
		return fmt.Errorf("%w: window end before start", ErrValidation)
	}
	return s.rules.Save(ctx, repository.KeyBookingWindow, w)
}

func (s *Service) SaveBookingPolicies(ctx context.Context, p repository.BookingPolicies) error {
	if p.MinBookingDate != "" {
		if _, err := domain.ParseBusinessDate(p.MinBookingDate); err != nil {
			return fmt.Errorf("%w: bad minimum booking date", ErrValidation)
		}
	}
	if p.MinAdvanceNoticeHours < 0 || p.CancellationPolicyHours < 0 {
		return fmt.Errorf("%w: negative policy hours", ErrValidation)
	}
	return s.rules.Save(ctx, repository.KeyBookingPolicies, p)
}

func (s *Service) SaveFullyBookedDates(ctx context.Context, dates []string) error {
	for _, d := range dates {
		if _, err := domain.ParseBusinessDate(d); err != nil {
			return fmt.Errorf("%w: bad date %q", ErrValidation, d)
		}
	}
	return s.rules.Save(ctx, repository.KeyFullyBookedDates, dates)
}

func validDayKey(key string, allowShared bool) bool {
	switch key {
	case "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday":
		return true
	case "weekday":
		return allowShared
	}
	return false
}
