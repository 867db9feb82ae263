package domain

import "time"

// Payment family targets for the polymorphic owner columns.
const (
	TargetBooking     = "booking"
	TargetShopOrder   = "shop_order"
	TargetCourseOrder = "course_order"
)

// Payment is one applied provider payment. ProviderCorrelationID is unique
// across the whole ledger and acts as the idempotency key: the same provider
// callback can be delivered many times but inserts here at most once.
type Payment struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	TargetType string `json:"target_type" gorm:"type:varchar(20);not null;index"`
	TargetID   int64  `json:"target_id" gorm:"not null;index"`

	Amount                float64   `json:"amount" gorm:"not null"`
	Method                string    `json:"method" gorm:"type:varchar(20)"`
	ProviderCorrelationID string    `json:"provider_correlation_id" gorm:"type:varchar(64);uniqueIndex:idx_payment_correlation;not null"`
	ProviderReceiptID     string    `json:"provider_receipt_id" gorm:"type:varchar(64)"`
	AppliedAt             time.Time `json:"applied_at"`

	CreatedAt time.Time `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
