package postgres

import (
	"context"
	"time"

	"github.com/jha9262/SafePath-AI/internal/domain"
)

type ZoneRepository interface {
	SaveReported(ctx context.Context, zone *domain.DangerZone, now time.Time) error
	ListAll(ctx context.Context) ([]domain.DangerZone, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type StatsRepository interface {
	SaveRouteCheck(ctx context.Context, check *domain.RouteCheck) error
	CountRouteChecks(ctx context.Context, minutes int) (int64, error)
	CountReports(ctx context.Context, minutes int) (int64, error)
}

func (p *Postgres) Zones() ZoneRepository { return p.Zone }
func (p *Postgres) Users() UserRepository { return p.User }
func (p *Postgres) Stats() StatsRepository { return p.Stat }
