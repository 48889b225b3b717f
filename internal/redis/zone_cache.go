package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ZoneCache keeps the full active-zone list under a single key. The radius
// filter always runs in-process over this list, so a cache entry is either
// the complete set or absent; there is no partial caching.
type ZoneCache struct {
	client *goredis.Client
	key    string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		key:    "danger_zones:active",
	}
}

// GetActive returns (nil, nil) on a cache miss.
func (c *ZoneCache) GetActive(ctx context.Context) ([]domain.CachedZone, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var zones []domain.CachedZone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}

	return zones, nil
}

func (c *ZoneCache) SetActive(ctx context.Context, zones []domain.CachedZone, ttl time.Duration) error {
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached list so the next read repopulates it with
// the freshly committed report included.
func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
