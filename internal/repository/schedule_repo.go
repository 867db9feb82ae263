package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"beautystudio/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Rule document keys in schedule_settings.
const (
	KeyBusinessHours    = "business_hours"
	KeySlotTemplates    = "slot_templates"
	KeyBookingWindow    = "booking_window"
	KeyBookingPolicies  = "booking_policies"
	KeyFullyBookedDates = "fully_booked_dates"
)

const (
	defaultMinAdvanceNoticeHours   = 24
	defaultCancellationPolicyHours = 48
)

// BookingPolicies is the stored shape of the policy document.
type BookingPolicies struct {
	MinBookingDate          string `json:"min_booking_date,omitempty"`
	MinAdvanceNoticeHours   int    `json:"min_advance_notice_hours"`
	CancellationPolicyHours int    `json:"cancellation_policy_hours"`
}

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Load builds a fresh rules snapshot from the stored documents. Missing
// documents fall back to defaults; there is no caching, rule edits take
// effect on the next request.
func (r *ScheduleRepository) Load(ctx context.Context) (*domain.ScheduleRules, error) {
	var rows []domain.ScheduleSetting
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		docs[row.Key] = row.Value
	}

	rules := &domain.ScheduleRules{
		Hours:                   domain.BusinessHours{},
		Templates:               domain.SlotTemplates{},
		FullyBooked:             map[string]bool{},
		MinAdvanceNotice:        defaultMinAdvanceNoticeHours * time.Hour,
		CancellationPolicyHours: defaultCancellationPolicyHours,
	}

	if raw, ok := docs[KeyBusinessHours]; ok {
		if err := json.Unmarshal(raw, &rules.Hours); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyBusinessHours, err)
		}
	}
	if raw, ok := docs[KeySlotTemplates]; ok {
		if err := json.Unmarshal(raw, &rules.Templates); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeySlotTemplates, err)
		}
	}
	if raw, ok := docs[KeyBookingWindow]; ok {
		var w domain.BookingWindow
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyBookingWindow, err)
		}
		if w.Start != "" || w.End != "" {
			rules.Window = &w
		}
	}
	if raw, ok := docs[KeyBookingPolicies]; ok {
		var p BookingPolicies
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyBookingPolicies, err)
		}
		rules.MinBookingDate = p.MinBookingDate
		if p.MinAdvanceNoticeHours > 0 {
			rules.MinAdvanceNotice = time.Duration(p.MinAdvanceNoticeHours) * time.Hour
		}
		if p.CancellationPolicyHours > 0 {
			rules.CancellationPolicyHours = p.CancellationPolicyHours
		}
	}
	if raw, ok := docs[KeyFullyBookedDates]; ok {
		var dates []string
		if err := json.Unmarshal(raw, &dates); err != nil {
			return nil, fmt.Errorf("decode %s: %w", KeyFullyBookedDates, err)
		}
		for _, d := range dates {
			rules.FullyBooked[d] = true
		}
	}

	return rules, nil
}

func (r *ScheduleRepository) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	row := domain.ScheduleSetting{Key: key, Value: raw, UpdatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
