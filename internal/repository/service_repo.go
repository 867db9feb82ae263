package repository

import (
	"context"

	"beautystudio/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.StudioService, error) {
	var out []domain.StudioService
	tx := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&out)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return out, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.StudioService, error) {
	var s domain.StudioService
	tx := r.db.WithContext(ctx).First(&s, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}
