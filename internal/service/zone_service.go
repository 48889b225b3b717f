package service

import (
	"context"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

func (s *Service) SubmitReport(ctx context.Context, req domain.ReportRequest) (*domain.DangerZone, error) {
	return s.ZoneService.SubmitReport(ctx, req)
}

func (s *Service) WithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyZone, error) {
	return s.ZoneService.WithinRadius(ctx, lat, lng, radiusKm)
}
