package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/internal/geo"
)

// routeScanRadiusKm is the fixed search radius around the route midpoint.
// The scorer samples only the midpoint, not the full path.
const routeScanRadiusKm = 2.0

type routeService struct {
	zones  ZoneService
	stats  StatsRepository // optional, nil disables route-check recording
	logger *slog.Logger
}

func NewRouteService(zones ZoneService, stats StatsRepository, logger *slog.Logger) RouteService {
	return &routeService{
		zones:  zones,
		stats:  stats,
		logger: logger,
	}
}

// ScoreRoute is a pure function of its inputs plus one store read: the
// same inputs against the same zone set always yield the same result.
func (s *routeService) ScoreRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error) {
	distance := geo.DistanceKm(req.SourceLat, req.SourceLng, req.DestLat, req.DestLng)
	midLat, midLng := geo.Midpoint(req.SourceLat, req.SourceLng, req.DestLat, req.DestLng)

	nearby, err := s.zones.WithinRadius(ctx, midLat, midLng, routeScanRadiusKm)
	if err != nil {
		s.logger.Error("radius query failed",
			slog.Float64("mid_lat", midLat),
			slog.Float64("mid_lng", midLng),
			slog.Any("error", err),
		)
		return domain.RouteResult{}, err
	}

	// Each nearby zone costs one point, floor of 1. Severity and distance
	// do not weigh in.
	score := 10.0 - float64(len(nearby))
	if score < 1.0 {
		score = 1.0
	}

	summaries := make([]domain.ZoneSummary, 0, len(nearby))
	for _, z := range nearby {
		summaries = append(summaries, domain.ZoneSummary{
			Latitude:      z.Lat,
			Longitude:     z.Lng,
			Category:      string(z.Category),
			SeverityScore: z.SeverityScore,
		})
	}

	result := domain.RouteResult{
		SafetyScore:       score,
		RouteDescription:  routeDescription(score),
		DangerZones:       summaries,
		EstimatedDistance: distance,
	}

	s.logger.Info("route scored",
		slog.Float64("distance_km", distance),
		slog.Int("zones_nearby", len(nearby)),
		slog.Float64("safety_score", score),
	)

	s.recordCheck(ctx, req, result)

	return result, nil
}

// recordCheck writes the stats row. Best-effort: a stats failure never
// fails the route query.
func (s *routeService) recordCheck(ctx context.Context, req domain.RouteRequest, result domain.RouteResult) {
	if s.stats == nil {
		return
	}
	check := &domain.RouteCheck{
		ID:          uuid.New(),
		SourceLat:   req.SourceLat,
		SourceLng:   req.SourceLng,
		DestLat:     req.DestLat,
		DestLng:     req.DestLng,
		SafetyScore: result.SafetyScore,
		ZoneCount:   len(result.DangerZones),
		CheckedAt:   time.Now().UTC(),
	}
	if err := s.stats.SaveRouteCheck(ctx, check); err != nil {
		s.logger.Warn("save route check failed", slog.Any("error", err))
	}
}

// Bands are checked against the unrounded score, first match wins.
func routeDescription(score float64) string {
	switch {
	case score >= 8:
		return "Excellent route with minimal safety concerns. Safe to travel."
	case score >= 6:
		return "Good route with some minor safety considerations. Exercise normal caution."
	case score >= 4:
		return "Moderate safety concerns detected. Consider alternative route if possible."
	default:
		return "High risk route with multiple danger zones. Strongly recommend alternative path."
	}
}
