package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (r *StatsRepo) SaveRouteCheck(ctx context.Context, check *domain.RouteCheck) error {
	const op = "postgres.Stats.SaveRouteCheck"

	if check == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
INSERT INTO route_checks (id, source_lat, source_lng, dest_lat, dest_lng, safety_score, zone_count, checked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

	if check.ID == uuid.Nil {
		check.ID = uuid.New()
	}
	if check.CheckedAt.IsZero() {
		check.CheckedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx, query,
		check.ID,
		check.SourceLat,
		check.SourceLng,
		check.DestLat,
		check.DestLng,
		check.SafetyScore,
		check.ZoneCount,
		check.CheckedAt,
	)
	if err != nil {
		r.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *StatsRepo) CountRouteChecks(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountRouteChecks"

	if minutes <= 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT COUNT(*)
FROM route_checks
WHERE checked_at >= now() - make_interval(mins => $1)
`

	var count int64
	if err := r.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}

func (r *StatsRepo) CountReports(ctx context.Context, minutes int) (int64, error) {
	const op = "postgres.Stats.CountReports"

	if minutes <= 0 {
		return 0, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT COUNT(*)
FROM danger_zones
WHERE created_at >= now() - make_interval(mins => $1)
`

	var count int64
	if err := r.pool.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		r.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return count, nil
}
