package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

type ZoneLister interface {
	ListAll(ctx context.Context) ([]domain.DangerZone, error)
}

type ZoneCacheService interface {
	SetActive(ctx context.Context, zones []domain.CachedZone, ttl time.Duration) error
}

// CacheRefresher reloads the active-zone cache from postgres on a fixed
// interval so the route scorer rarely hits a cold cache.
type CacheRefresher struct {
	zones    ZoneLister
	cache    ZoneCacheService
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewCacheRefresher(zones ZoneLister, cache ZoneCacheService, interval, ttl time.Duration, logger *slog.Logger) *CacheRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CacheRefresher{
		zones:    zones,
		cache:    cache,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("cacheRefresher STARTED", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cacheRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	list, err := w.zones.ListAll(ctx)
	if err != nil {
		w.logger.Error("zone list for cache refresh failed", slog.Any("error", err))
		return
	}

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

	if err := w.cache.SetActive(ctx, zones, w.ttl); err != nil {
		w.logger.Error("zone cache refresh failed", slog.Any("error", err))
		return
	}

	w.logger.Debug("zone cache refreshed", slog.Int("zones", len(zones)))
}
