package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"net/http"
	"time"

	"log/slog"

	"github.com/jha9262/SafePath-AI/internal/config"
	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/internal/redis"
	"github.com/jha9262/SafePath-AI/pkg/e"
)

// AlertSender drains the report-alert queue and delivers each alert to the
// configured webhook.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  *redis.AlertQueue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.WebhookConfig, q *redis.AlertQueue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		alert, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending report alert", slog.String("zone_id", alert.ZoneID.String()))
		s.sendWithRetry(ctx, alert)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, alert domain.ReportAlert) {
	const maxRetries = 3

	body, err := json.Marshal(alert)
	if err != nil {
		s.logger.Error("marshal report alert failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("report alert failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
