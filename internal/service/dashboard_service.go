package service

import (
	"context"

	"github.com/WHSBrasil/IS-PAT/internal/apierror"
	"github.com/WHSBrasil/IS-PAT/internal/dto"
	"github.com/WHSBrasil/IS-PAT/internal/repository"
)

// DashboardService computes asset counts per status, recomputed on demand.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardService struct {
	tombamentos repository.TombamentoRepository
}

func NewDashboardService(tombamentos repository.TombamentoRepository) DashboardService {
	return &dashboardService{tombamentos: tombamentos}
}

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	stats, err := s.tombamentos.ContarPorStatus(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	return &stats, nil
}
