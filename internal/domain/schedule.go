package domain

import (
	"fmt"
	"time"
)

// BusinessTimezone is the studio's fixed timezone. All weekday and slot
// calculations are done in this location, never in server-local time.
const BusinessTimezone = "Africa/Nairobi"

const DateLayout = "2006-01-02"

var businessLocation = mustLoadLocation(BusinessTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("load business timezone %s: %v", name, err))
	}
	return loc
}

func BusinessLocation() *time.Location {
	return businessLocation
}

// ParseBusinessDate parses a YYYY-MM-DD string as midnight in the business
// timezone.
func ParseBusinessDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, businessLocation)
}

// BusinessToday truncates now to midnight in the business timezone.
func BusinessToday(now time.Time) time.Time {
	n := now.In(businessLocation)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, businessLocation)
}

type SlotTemplate struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Label  string `json:"label"`
}

// At materializes the template on a given business date as an absolute
// timestamp.
func (t SlotTemplate) At(day time.Time) time.Time {
	d := day.In(businessLocation)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, businessLocation)
}

func (t SlotTemplate) TimeString() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

type DayRule struct {
	Enabled bool `json:"enabled"`
}

// BusinessHours holds per-weekday open/closed flags keyed by lowercase
// weekday name. Absent days default to open, except Saturday.
type BusinessHours map[string]DayRule

func (h BusinessHours) DayEnabled(day time.Weekday) bool {
	if r, ok := h[WeekdayKey(day)]; ok {
		return r.Enabled
	}
	return day != time.Saturday
}

// SlotTemplates maps a weekday key (or the shared "weekday" bucket covering
// Monday through Friday) to an ordered slot list.
type SlotTemplates map[string][]SlotTemplate

const sharedWeekdayKey = "weekday"

type BookingWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleRules is the read-only per-request snapshot of every admin-editable
// scheduling rule.
type ScheduleRules struct {
	Hours                   BusinessHours
	Templates               SlotTemplates
	Window                  *BookingWindow
	MinBookingDate          string
	FullyBooked             map[string]bool
	MinAdvanceNotice        time.Duration
	CancellationPolicyHours int
}

// Built-in fallback slot sets, used when no template is configured at all.
var (
	defaultWeekdaySlots = []SlotTemplate{
		{Hour: 9, Minute: 30, Label: "Morning"},
		{Hour: 11, Minute: 30, Label: "Late morning"},
		{Hour: 14, Minute: 0, Label: "Afternoon"},
		{Hour: 16, Minute: 0, Label: "Late afternoon"},
	}
	defaultSaturdaySlots = []SlotTemplate{
		{Hour: 10, Minute: 0, Label: "Morning"},
		{Hour: 12, Minute: 30, Label: "Midday"},
	}
	defaultSundaySlots = []SlotTemplate{
		{Hour: 11, Minute: 0, Label: "Morning"},
		{Hour: 13, Minute: 30, Label: "Afternoon"},
		{Hour: 15, Minute: 30, Label: "Late afternoon"},
	}
)

// TemplatesFor resolves the slot list for a weekday. Priority order:
// per-day template, then the shared weekday bucket (Monday-Friday only),
// then the built-in default. Saturday and Sunday never fall back to the
// shared bucket.
func (r *ScheduleRules) TemplatesFor(day time.Weekday) []SlotTemplate {
	switch day {
	case time.Sunday:
		if s := r.Templates[WeekdayKey(day)]; len(s) > 0 {
			return s
		}
		return defaultSundaySlots
	case time.Saturday:
		if s := r.Templates[WeekdayKey(day)]; len(s) > 0 {
			return s
		}
		return defaultSaturdaySlots
	default:
		if s := r.Templates[WeekdayKey(day)]; len(s) > 0 {
			return s
		}
		if s := r.Templates[sharedWeekdayKey]; len(s) > 0 {
			return s
		}
		return defaultWeekdaySlots
	}
}

func (r *ScheduleRules) IsFullyBooked(date string) bool {
	return r.FullyBooked[date]
}

func WeekdayKey(w time.Weekday) string {
	switch w {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
