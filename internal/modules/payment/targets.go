package payment

import (
	"context"
	"errors"

	"beautystudio/internal/domain"
	"beautystudio/internal/notification"

	"gorm.io/gorm"
)

// BookingTarget reconciles deposit payments against bookings.
type BookingTarget struct {
	bookings BookingLedger
	notifs   Notifier
	loggerf  func(format string, args ...interface{})
}

func NewBookingTarget(bookings BookingLedger, notifs Notifier, loggerf func(format string, args ...interface{})) *BookingTarget {
	return &BookingTarget{bookings: bookings, notifs: notifs, loggerf: loggerf}
}

func (t *BookingTarget) Family() string { return domain.TargetBooking }

func (t *BookingTarget) Locate(ctx context.Context, correlationID string) (int64, bool, error) {
	b, err := t.bookings.FindByCorrelationID(ctx, correlationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return b.ID, true, nil
}

func (t *BookingTarget) HasPayment(ctx context.Context, recordID int64, correlationID string) (bool, error) {
	return t.bookings.HasPayment(ctx, recordID, correlationID)
}

func (t *BookingTarget) Apply(ctx context.Context, recordID int64, p *domain.Payment) error {
	b, err := t.bookings.AppendPayment(ctx, recordID, p)
	if err != nil {
		return err
	}
	if b.Deposit > b.FinalPrice {
		t.loggerf("level=error msg=booking deposit exceeds final price, needs manual review booking_id=%d deposit=%.2f final_price=%.2f correlation_id=%s",
			b.ID, b.Deposit, b.FinalPrice, p.ProviderCorrelationID)
	}
	return nil
}

func (t *BookingTarget) NotifyApplied(ctx context.Context, recordID int64, p *domain.Payment) {
	b, err := t.bookings.GetByID(ctx, recordID)
	if err != nil {
		t.loggerf("level=error msg=failed to load booking for receipt booking_id=%d err=%v", recordID, err)
		return
	}
	if err := t.notifs.SendReceipt(ctx, notification.Receipt{
		Family:        t.Family(),
		RecordID:      b.ID,
		Email:         b.ClientEmail,
		Amount:        p.Amount,
		ReceiptNumber: p.ProviderReceiptID,
	}); err != nil {
		t.loggerf("level=error msg=receipt notification failed booking_id=%d err=%v", b.ID, err)
	}
}

func (t *BookingTarget) RegisterCheckout(ctx context.Context, recordID int64, correlationID string) error {
	return t.bookings.SetCheckoutRequest(ctx, recordID, correlationID)
}

// ShopOrderTarget reconciles payments against shop orders.
type ShopOrderTarget struct {
	orders  OrderLedger
	notifs  Notifier
	loggerf func(format string, args ...interface{})
}

func NewShopOrderTarget(orders OrderLedger, notifs Notifier, loggerf func(format string, args ...interface{})) *ShopOrderTarget {
	return &ShopOrderTarget{orders: orders, notifs: notifs, loggerf: loggerf}
}

func (t *ShopOrderTarget) Family() string { return domain.TargetShopOrder }

func (t *ShopOrderTarget) Locate(ctx context.Context, correlationID string) (int64, bool, error) {
	o, err := t.orders.FindShopOrderByCorrelationID(ctx, correlationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return o.ID, true, nil
}

func (t *ShopOrderTarget) HasPayment(ctx context.Context, recordID int64, correlationID string) (bool, error) {
	return t.orders.HasPayment(ctx, domain.TargetShopOrder, recordID, correlationID)
}

func (t *ShopOrderTarget) Apply(ctx context.Context, recordID int64, p *domain.Payment) error {
	_, err := t.orders.AppendShopPayment(ctx, recordID, p)
	return err
}

func (t *ShopOrderTarget) NotifyApplied(ctx context.Context, recordID int64, p *domain.Payment) {
	o, err := t.orders.GetShopOrder(ctx, recordID)
	if err != nil {
		t.loggerf("level=error msg=failed to load shop order for receipt order_id=%d err=%v", recordID, err)
		return
	}
	if err := t.notifs.SendReceipt(ctx, notification.Receipt{
		Family:        t.Family(),
		RecordID:      o.ID,
		Email:         o.CustomerEmail,
		Amount:        p.Amount,
		ReceiptNumber: p.ProviderReceiptID,
	}); err != nil {
		t.loggerf("level=error msg=receipt notification failed order_id=%d err=%v", o.ID, err)
	}
}

func (t *ShopOrderTarget) RegisterCheckout(ctx context.Context, recordID int64, correlationID string) error {
	return t.orders.SetShopCheckout(ctx, recordID, correlationID)
}

// CourseOrderTarget reconciles payments against course enrollments; the
// first applied payment also provisions the student account.
type CourseOrderTarget struct {
	orders  OrderLedger
	notifs  Notifier
	loggerf func(format string, args ...interface{})
}

func NewCourseOrderTarget(orders OrderLedger, notifs Notifier, loggerf func(format string, args ...interface{})) *CourseOrderTarget {
	return &CourseOrderTarget{orders: orders, notifs: notifs, loggerf: loggerf}
}

func (t *CourseOrderTarget) Family() string { return domain.TargetCourseOrder }

func (t *CourseOrderTarget) Locate(ctx context.Context, correlationID string) (int64, bool, error) {
	o, err := t.orders.FindCourseOrderByCorrelationID(ctx, correlationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return o.ID, true, nil
}

func (t *CourseOrderTarget) HasPayment(ctx context.Context, recordID int64, correlationID string) (bool, error) {
	return t.orders.HasPayment(ctx, domain.TargetCourseOrder, recordID, correlationID)
}

func (t *CourseOrderTarget) Apply(ctx context.Context, recordID int64, p *domain.Payment) error {
	_, err := t.orders.AppendCoursePayment(ctx, recordID, p)
	return err
}

func (t *CourseOrderTarget) NotifyApplied(ctx context.Context, recordID int64, p *domain.Payment) {
	o, err := t.orders.GetCourseOrder(ctx, recordID)
	if err != nil {
		t.loggerf("level=error msg=failed to load course order for receipt order_id=%d err=%v", recordID, err)
		return
	}
	if err := t.notifs.SendReceipt(ctx, notification.Receipt{
		Family:        t.Family(),
		RecordID:      o.ID,
		Email:         o.StudentEmail,
		Amount:        p.Amount,
		ReceiptNumber: p.ProviderReceiptID,
	}); err != nil {
		t.loggerf("level=error msg=receipt notification failed order_id=%d err=%v", o.ID, err)
	}
	if !o.AccountProvisioned {
		if err := t.notifs.SendWelcome(ctx, o.StudentEmail, o.StudentName); err != nil {
			t.loggerf("level=error msg=welcome notification failed order_id=%d err=%v", o.ID, err)
		}
		if err := t.orders.MarkAccountProvisioned(ctx, o.ID); err != nil {
			t.loggerf("level=error msg=failed to mark account provisioned order_id=%d err=%v", o.ID, err)
		}
	}
}

func (t *CourseOrderTarget) RegisterCheckout(ctx context.Context, recordID int64, correlationID string) error {
	return t.orders.SetCourseCheckout(ctx, recordID, correlationID)
}
