package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/internal/geo"
	"github.com/jha9262/SafePath-AI/pkg/e"
)

// reportCooldown is the per-user spacing between accepted reports.
// A report at exactly +60s from the previous one passes the gate.
const reportCooldown = time.Minute

const defaultSeverityScore = 1

type zoneService struct {
	zones    ZoneRepository
	users    UserRepository
	cache    ZoneCacheService
	alerts   AlertQueue
	logger   *slog.Logger
	cacheTTL time.Duration
}

func NewZoneService(
	zones ZoneRepository,
	users UserRepository,
	cache ZoneCacheService,
	alerts AlertQueue,
	logger *slog.Logger,
	cacheTTL time.Duration,
) ZoneService {
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &zoneService{
		zones:    zones,
		users:    users,
		cache:    cache,
		alerts:   alerts,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

func (s *zoneService) SubmitReport(ctx context.Context, req domain.ReportRequest) (*domain.DangerZone, error) {
	s.logger.Info("report submit START",
		slog.String("user_email", req.UserEmail),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
		slog.String("category", string(req.Category)),
	)

	user, err := s.users.FindByEmail(ctx, req.UserEmail)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// Fast-path reject on the loaded row. The authoritative gate is the
	// conditional UPDATE inside SaveReported: two concurrent submissions
	// from the same user can both get past this check but only one claims
	// the row.
	if user.LastReportTime != nil && user.LastReportTime.After(now.Add(-reportCooldown)) {
		s.logger.Warn("report rate limited",
			slog.String("user_email", req.UserEmail),
			slog.Time("last_report_time", *user.LastReportTime),
		)
		return nil, e.ErrRateLimited
	}

	zone := &domain.DangerZone{
		ID:            uuid.New(),
		Lat:           req.Lat,
		Lng:           req.Lng,
		Category:      req.Category,
		ReportedBy:    user.ID,
		CreatedAt:     now,
		SeverityScore: defaultSeverityScore,
	}

	if err := s.zones.SaveReported(ctx, zone, now); err != nil {
		return nil, err
	}

	// Cache and alerts are best-effort: the report is already committed.
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("zone cache invalidate failed", slog.Any("error", err))
	}

	alert := domain.ReportAlert{
		ZoneID:     zone.ID,
		Lat:        zone.Lat,
		Lng:        zone.Lng,
		Category:   zone.Category,
		ReportedAt: zone.CreatedAt,
	}
	if err := s.alerts.Enqueue(ctx, alert); err != nil {
		s.logger.Error("enqueue report alert failed", slog.Any("error", err))
	}

	s.logger.Info("report submit END", slog.String("zone_id", zone.ID.String()))
	return zone, nil
}

func (s *zoneService) WithinRadius(ctx context.Context, lat, lng, radiusKm float64) ([]domain.NearbyZone, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, e.ErrInvalidCoordinates
	}
	if radiusKm <= 0 {
		return nil, e.ErrInvalidInput
	}

	zones, err := s.activeZones(ctx)
	if err != nil {
		return nil, err
	}

	nearby := filterNearby(zones, lat, lng, radiusKm)
	s.logger.Debug("haversine filter done",
		slog.Int("total", len(zones)),
		slog.Int("nearby", len(nearby)),
	)
	return nearby, nil
}

// activeZones reads the cached zone list, falling back to postgres on a
// cache miss or error. The fallback repopulates the cache best-effort.
func (s *zoneService) activeZones(ctx context.Context) ([]domain.CachedZone, error) {
	cached, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("zone cache read failed, falling back to db", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	list, err := s.zones.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	zones := toCachedZones(list)
	if err := s.cache.SetActive(ctx, zones, s.cacheTTL); err != nil {
		s.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

func toCachedZones(list []domain.DangerZone) []domain.CachedZone {
	zones := make([]domain.CachedZone, 0, len(list))
	for _, z := range list {
		zones = append(zones, domain.CachedZone{
			ID:            z.ID,
			Lat:           z.Lat,
			Lng:           z.Lng,
			Category:      z.Category,
			SeverityScore: z.SeverityScore,
		})
	}
	return zones
}

// filterNearby keeps zones whose distance from the center is <= radiusKm.
// Inclusive comparison: a zone sitting exactly on the boundary counts.
// Store-native order is preserved.
func filterNearby(zones []domain.CachedZone, lat, lng, radiusKm float64) []domain.NearbyZone {
	nearby := make([]domain.NearbyZone, 0)
	for _, z := range zones {
		dist := geo.DistanceKm(lat, lng, z.Lat, z.Lng)
		if dist <= radiusKm {
			nearby = append(nearby, domain.NearbyZone{
				ID:            z.ID,
				Lat:           z.Lat,
				Lng:           z.Lng,
				Category:      z.Category,
				SeverityScore: z.SeverityScore,
				DistanceKM:    dist,
			})
		}
	}
	return nearby
}
