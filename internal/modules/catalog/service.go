package catalog

import (
	"context"

	"beautystudio/internal/domain"
)

type ServiceRepository interface {
	ListActive(ctx context.Context) ([]domain.StudioService, error)
}

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) ListServices(ctx context.Context) ([]domain.StudioService, error) {
	return s.services.ListActive(ctx)
}
