package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jha9262/SafePath-AI/internal/api"
	"github.com/jha9262/SafePath-AI/internal/config"
	"github.com/jha9262/SafePath-AI/internal/redis"
	"github.com/jha9262/SafePath-AI/internal/service"
	"github.com/jha9262/SafePath-AI/internal/storage/postgres"
	"github.com/jha9262/SafePath-AI/internal/workers"
	"github.com/jha9262/SafePath-AI/pkg/logger"
)

type Components struct {
	logger         *slog.Logger
	HttpServer     *api.Server
	Postgres       *postgres.Postgres
	Redis          *redis.Redis
	AlertQ         *redis.AlertQueue
	AlertSender    *service.AlertSender
	CacheRefresher *workers.CacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	zoneCache := redis.NewZoneCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	zoneSvc := service.NewZoneService(storage.Zones(), storage.Users(), zoneCache, alertQueue, logger, cfg.Cache.ZoneTTL)
	routeSvc := service.NewRouteService(zoneSvc, storage.Stats(), logger)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(zoneSvc, routeSvc, statsSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	alertSender := service.NewAlertSender(logger, cfg.Webhook, alertQueue)
	refresher := workers.NewCacheRefresher(storage.Zones(), zoneCache, cfg.Cache.RefreshInterval, cfg.Cache.ZoneTTL, logger)

	return &Components{
		logger:         logger,
		HttpServer:     httpServer,
		Postgres:       storage,
		Redis:          redisClient,
		AlertQ:         alertQueue,
		AlertSender:    alertSender,
		CacheRefresher: refresher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
