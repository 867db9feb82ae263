package payment

import (
	"context"

	"beautystudio/internal/domain"
	"beautystudio/internal/notification"
)

// Reconcilable is one record family able to match and absorb a provider
// payment callback exactly once. The reconciler iterates the registered
// families instead of duplicating the scan-and-apply logic per family.
type Reconcilable interface {
	Family() string
	// Locate resolves the correlation id to a record id; found=false is not
	// an error.
	Locate(ctx context.Context, correlationID string) (id int64, found bool, err error)
	HasPayment(ctx context.Context, recordID int64, correlationID string) (bool, error)
	// Apply appends the payment atomically; a concurrent duplicate surfaces
	// as repository.ErrDuplicatePayment.
	Apply(ctx context.Context, recordID int64, p *domain.Payment) error
	// NotifyApplied fires the family's post-payment side effects. Called at
	// most once per applied payment; failures are logged, never returned.
	NotifyApplied(ctx context.Context, recordID int64, p *domain.Payment)
	// RegisterCheckout records the provider correlation id for a pending
	// checkout on the record.
	RegisterCheckout(ctx context.Context, recordID int64, correlationID string) error
}

type Notifier interface {
	SendReceipt(ctx context.Context, rc notification.Receipt) error
	SendWelcome(ctx context.Context, email, name string) error
}

type BookingLedger interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error)
	HasPayment(ctx context.Context, bookingID int64, correlationID string) (bool, error)
	AppendPayment(ctx context.Context, bookingID int64, p *domain.Payment) (*domain.Booking, error)
	SetCheckoutRequest(ctx context.Context, bookingID int64, correlationID string) error
}

type OrderLedger interface {
	GetShopOrder(ctx context.Context, id int64) (*domain.ShopOrder, error)
	GetCourseOrder(ctx context.Context, id int64) (*domain.CourseOrder, error)
	FindShopOrderByCorrelationID(ctx context.Context, correlationID string) (*domain.ShopOrder, error)
	FindCourseOrderByCorrelationID(ctx context.Context, correlationID string) (*domain.CourseOrder, error)
	HasPayment(ctx context.Context, targetType string, targetID int64, correlationID string) (bool, error)
	AppendShopPayment(ctx context.Context, orderID int64, p *domain.Payment) (*domain.ShopOrder, error)
	AppendCoursePayment(ctx context.Context, orderID int64, p *domain.Payment) (*domain.CourseOrder, error)
	MarkAccountProvisioned(ctx context.Context, orderID int64) error
	SetShopCheckout(ctx context.Context, orderID int64, correlationID string) error
	SetCourseCheckout(ctx context.Context, orderID int64, correlationID string) error
}
