package service

import (
	"context"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ZoneService owns danger-zone submission (rate gate included) and the
// radius query both the public endpoint and the route scorer use.
type ZoneService interface {
	SubmitReport(ctx context.Context, req domain.ReportRequest) (*domain.DangerZone, error)
	WithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyZone, error)
}

type RouteService interface {
	ScoreRoute(ctx context.Context, req domain.RouteRequest) (domain.RouteResult, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error)
}

// ZoneRepository persists zones. SaveReported must atomically claim the
// reporter's cooldown slot and insert the zone in one transaction: either
// both commit or neither does.
type ZoneRepository interface {
	SaveReported(ctx context.Context, zone *domain.DangerZone, now time.Time) error
	ListAll(ctx context.Context) ([]domain.DangerZone, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ZoneCacheService interface {
	GetActive(ctx context.Context) ([]domain.CachedZone, error)
	SetActive(ctx context.Context, zones []domain.CachedZone, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.ReportAlert) error
}

type StatsRepository interface {
	SaveRouteCheck(ctx context.Context, check *domain.RouteCheck) error
	CountRouteChecks(ctx context.Context, minutes int) (int64, error)
	CountReports(ctx context.Context, minutes int) (int64, error)
}

type ctxKey string

type Service struct {
	ZoneService  ZoneService
	RouteService RouteService
	StatsService StatsService
}

func NewService(
	zoneService ZoneService,
	routeService RouteService,
	statsService StatsService,
) *Service {
	return &Service{
		ZoneService:  zoneService,
		RouteService: routeService,
		StatsService: statsService,
	}
}
