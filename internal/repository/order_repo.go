package repository

import (
	"context"

	"beautystudio/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetShopOrder(ctx context.Context, id int64) (*domain.ShopOrder, error) {
	var o domain.ShopOrder
	tx := r.db.WithContext(ctx).Preload("Items").Preload("Payments").First(&o, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) GetCourseOrder(ctx context.Context, id int64) (*domain.CourseOrder, error) {
	var o domain.CourseOrder
	tx := r.db.WithContext(ctx).Preload("Payments").First(&o, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) FindShopOrderByCorrelationID(ctx context.Context, correlationID string) (*domain.ShopOrder, error) {
	var o domain.ShopOrder
	tx := r.db.WithContext(ctx).Where("checkout_request_id = ?", correlationID).First(&o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) FindCourseOrderByCorrelationID(ctx context.Context, correlationID string) (*domain.CourseOrder, error) {
	var o domain.CourseOrder
	tx := r.db.WithContext(ctx).Where("checkout_request_id = ?", correlationID).First(&o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OrderRepository) HasPayment(ctx context.Context, targetType string, targetID int64, correlationID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("target_type = ? AND target_id = ? AND provider_correlation_id = ?",
			targetType, targetID, correlationID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// AppendShopPayment inserts the payment and recomputes the paid aggregate
// from the payment sum inside one transaction.
func (r *OrderRepository) AppendShopPayment(ctx context.Context, orderID int64, p *domain.Payment) (*domain.ShopOrder, error) {
	p.TargetType = domain.TargetShopOrder
	p.TargetID = orderID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			if IsUniqueViolation(err, "idx_payment_correlation") {
				return ErrDuplicatePayment
			}
			return err
		}
		return tx.Exec(
			`UPDATE shop_orders
			 SET paid = ((SELECT COALESCE(SUM(amount), 0) FROM payments
			              WHERE target_type = ? AND target_id = ?) >= total)
			 WHERE id = ?`,
			domain.TargetShopOrder, orderID, orderID,
		).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetShopOrder(ctx, orderID)
}

func (r *OrderRepository) AppendCoursePayment(ctx context.Context, orderID int64, p *domain.Payment) (*domain.CourseOrder, error) {
	p.TargetType = domain.TargetCourseOrder
	p.TargetID = orderID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			if IsUniqueViolation(err, "idx_payment_correlation") {
				return ErrDuplicatePayment
			}
			return err
		}
		return tx.Exec(
			`UPDATE course_orders
			 SET paid = ((SELECT COALESCE(SUM(amount), 0) FROM payments
			              WHERE target_type = ? AND target_id = ?) >= price)
			 WHERE id = ?`,
			domain.TargetCourseOrder, orderID, orderID,
		).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetCourseOrder(ctx, orderID)
}

func (r *OrderRepository) MarkAccountProvisioned(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.CourseOrder{}).
		Where("id = ?", orderID).
		Update("account_provisioned", true).Error
}

func (r *OrderRepository) SetShopCheckout(ctx context.Context, orderID int64, correlationID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.ShopOrder{}).
		Where("id = ?", orderID).
		Update("checkout_request_id", correlationID).Error
}

func (r *OrderRepository) SetCourseCheckout(ctx context.Context, orderID int64, correlationID string) error {
	return r.db.WithContext(ctx).
		Model(&domain.CourseOrder{}).
		Where("id = ?", orderID).
		Update("checkout_request_id", correlationID).Error
}
