package service

import (
	"context"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error) {
	return s.StatsService.GetStats(ctx, req)
}
