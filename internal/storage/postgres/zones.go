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

type ZoneRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewZoneRepo(pool *pgxpool.Pool, logger *slog.Logger) *ZoneRepo {
	return &ZoneRepo{pool: pool, logger: logger}
}

// SaveReported claims the reporter's cooldown slot and inserts the zone in
// one transaction. The conditional UPDATE is the authoritative rate gate:
// under concurrent submissions from the same user exactly one UPDATE
// matches the row, the rest roll back with ErrRateLimited and leave
// last_report_time untouched. A failed INSERT rolls the claim back too.
func (r *ZoneRepo) SaveReported(ctx context.Context, zone *domain.DangerZone, now time.Time) error {
	const op = "postgres.Zone.SaveReported"

	if zone == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if zone.ReportedBy == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if zone.Lat < -90 || zone.Lat > 90 || zone.Lng < -180 || zone.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = now
	}
	if zone.SeverityScore < 1 {
		zone.SeverityScore = 1
	}

	// "last_report_time <= cutoff" keeps a report at exactly +60s legal;
	// only a strictly-later previous report blocks.
	const claimQuery = `
UPDATE users
SET last_report_time = $2
WHERE id = $1
  AND (last_report_time IS NULL OR last_report_time <= $3)
`

	const insertQuery = `
INSERT INTO danger_zones (id, latitude, longitude, category, reported_by, created_at, severity_score)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error("begin tx failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	cutoff := now.Add(-time.Minute)
	cmd, err := tx.Exec(ctx, claimQuery, zone.ReportedBy, now, cutoff)
	if err != nil {
		r.logger.Error("claim exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		// The caller resolved the user before calling, so a zero-row
		// UPDATE means the cooldown held, not a missing row.
		return fmt.Errorf("%s: %w", op, e.ErrRateLimited)
	}

	_, err = tx.Exec(ctx, insertQuery,
		zone.ID,
		zone.Lat,
		zone.Lng,
		zone.Category,
		zone.ReportedBy,
		zone.CreatedAt,
		zone.SeverityScore,
	)
	if err != nil {
		r.logger.Error("zone insert failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("zone_id", zone.ID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (r *ZoneRepo) ListAll(ctx context.Context) ([]domain.DangerZone, error) {
	const op = "postgres.Zone.ListAll"

	const query = `
SELECT id, latitude, longitude, category, reported_by, created_at, severity_score
FROM danger_zones
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	zones := make([]domain.DangerZone, 0, 32)
	for rows.Next() {
		var z domain.DangerZone
		if err := rows.Scan(
			&z.ID,
			&z.Lat,
			&z.Lng,
			&z.Category,
			&z.ReportedBy,
			&z.CreatedAt,
			&z.SeverityScore,
		); err != nil {
			r.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return zones, nil
}
