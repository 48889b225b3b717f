package service

import (
	"context"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

func (s *Service) ScoreRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error) {
	return s.RouteService.ScoreRoute(ctx, req)
}
