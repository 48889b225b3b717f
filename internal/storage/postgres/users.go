package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jha9262/SafePath-AI/internal/domain"
	"github.com/jha9262/SafePath-AI/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepo(pool *pgxpool.Pool, logger *slog.Logger) *UserRepo {
	return &UserRepo{pool: pool, logger: logger}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "postgres.User.FindByEmail"

	if email == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT id, email, last_report_time
FROM users
WHERE email = $1
`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.LastReportTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrUserNotFound)
		}
		r.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("email", email),
		)
		return nil, e.WrapError(ctx, op, err)
	}

	return &u, nil
}
