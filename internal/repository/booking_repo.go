package repository

import (
	"context"
	"time"

	"beautystudio/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the reservation. The partial unique index
// idx_no_double_booking makes this the single serialization point between
// concurrent reservations of the same slot; callers detect the violation
// with IsUniqueViolation.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Preload("Payments").First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) GetByManageToken(ctx context.Context, token string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Preload("Payments").Where("manage_token = ?", token).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// TakenSlots returns the slot times of non-cancelled bookings on a date. The
// ledger is authoritative for conflicts even when the external calendar lags.
func (r *BookingRepository) TakenSlots(ctx context.Context, date string) ([]string, error) {
	var slots []string
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("date = ? AND status <> ?", date, domain.BookingCancelled).
		Pluck("slot_time", &slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

func (r *BookingRepository) FindByCorrelationID(ctx context.Context, correlationID string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Where("checkout_request_id = ?", correlationID).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) HasPayment(ctx context.Context, bookingID int64, correlationID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("target_type = ? AND target_id = ? AND provider_correlation_id = ?",
			domain.TargetBooking, bookingID, correlationID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// AppendPayment applies one provider payment to the booking as a single
// transaction: the unique index on provider_correlation_id rejects a
// concurrent duplicate (ErrDuplicatePayment), the deposit increment and the
// paid_in_full/status recompute run as SQL expressions so no read-modify-write
// race exists.
func (r *BookingRepository) AppendPayment(ctx context.Context, bookingID int64, p *domain.Payment) (*domain.Booking, error) {
	p.TargetType = domain.TargetBooking
	p.TargetID = bookingID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			if IsUniqueViolation(err, "idx_payment_correlation") {
				return ErrDuplicatePayment
			}
			return err
		}
		if err := tx.Exec(
			`UPDATE bookings SET deposit = deposit + ?, updated_at = ? WHERE id = ?`,
			p.Amount, time.Now().UTC(), bookingID,
		).Error; err != nil {
			return err
		}
		return tx.Exec(
			`UPDATE bookings
			 SET paid_in_full = (deposit >= final_price),
			     status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END
			 WHERE id = ?`,
			bookingID,
		).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, bookingID)
}

func (r *BookingRepository) SetCheckoutRequest(ctx context.Context, bookingID int64, correlationID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("checkout_request_id", correlationID).Error
}

// UpdateSchedule moves the booking to a new slot. Subject to the same unique
// index as Create.
func (r *BookingRepository) UpdateSchedule(ctx context.Context, bookingID int64, date, slotTime string, startAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"date":      date,
			"slot_time": slotTime,
			"start_at":  startAt,
		}).Error
}

func (r *BookingRepository) UpdateService(ctx context.Context, bookingID, serviceID int64, finalPrice float64, paidInFull bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"service_id":   serviceID,
			"final_price":  finalPrice,
			"paid_in_full": paidInFull,
		}).Error
}

func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":              domain.BookingCancelled,
			"cancellation_reason": reason,
			"cancelled_at":        &now,
		}).Error
}
