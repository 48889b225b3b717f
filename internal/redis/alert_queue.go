package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/e"

	"github.com/redis/go-redis/v9"
)

type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, payload domain.ReportAlert) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ReportAlert, error) {
	var p domain.ReportAlert

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrAlertQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
