package service

import (
	"context"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

type statsService struct {
	repo StatsRepository
}

func NewStatsService(repo StatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	checks, err := s.repo.CountRouteChecks(ctx, minutes)
	if err != nil {
		return nil, err
	}

	reports, err := s.repo.CountReports(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.Stats{
		RouteChecks: checks,
		Reports:     reports,
		Minutes:     minutes,
	}, nil
}
