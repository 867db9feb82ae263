package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the durable appointment record. It is never hard-deleted, only
// status-transitioned.
type Booking struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	ClientName  string `json:"client_name" gorm:"type:varchar(128);not null"`
	ClientEmail string `json:"client_email" gorm:"type:varchar(128);not null"`
	ClientPhone string `json:"client_phone" gorm:"type:varchar(32)"`
	ServiceID   int64  `json:"service_id" gorm:"index;not null"`

	// Date and SlotTime identify the reserved slot; the partial unique index
	// idx_no_double_booking on (date, slot_time) for non-cancelled rows is
	// the authoritative double-booking guard.
	Date     string    `json:"date" gorm:"type:varchar(10);not null"`
	SlotTime string    `json:"slot_time" gorm:"type:varchar(5);not null"`
	StartAt  time.Time `json:"start_at" gorm:"not null"`

	FinalPrice float64 `json:"final_price"`
	Discount   float64 `json:"discount"`
	Deposit    float64 `json:"deposit"`
	// PaidInFull is derived, recomputed whenever a payment is applied.
	PaidInFull bool `json:"paid_in_full"`

	Status                  BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	CancellationPolicyHours int           `json:"cancellation_policy_hours"`
	CancellationReason      string        `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt             *time.Time    `json:"cancelled_at,omitempty"`

	// ManageToken is the opaque client-facing handle for self-service
	// reschedule/cancel links.
	ManageToken string `json:"-" gorm:"type:varchar(64);uniqueIndex;not null"`

	// CheckoutRequestID is the provider correlation id of the outstanding
	// deposit checkout, set when a payment is initiated.
	CheckoutRequestID string `json:"-" gorm:"type:varchar(64);index"`

	Payments []Payment `json:"payments" gorm:"polymorphic:Target"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
