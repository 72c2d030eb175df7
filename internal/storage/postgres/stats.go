package postgres

import (
	"context"
	"log/slog"
	"time"

	"streetwise/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) CountReports(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.CountReports"
	return p.count(ctx, op, `SELECT COUNT(*) FROM security_reports`)
}

func (p *StatsRepo) CountReportsSince(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "postgres.Stats.CountReportsSince"
	return p.count(ctx, op, `SELECT COUNT(*) FROM security_reports WHERE created_at >= $1`, cutoff)
}

func (p *StatsRepo) CountEscorts(ctx context.Context) (int64, error) {
	const op = "postgres.Stats.CountEscorts"
	return p.count(ctx, op, `SELECT COUNT(*) FROM escort_requests`)
}

func (p *StatsRepo) CountActiveEscortsSince(ctx context.Context, cutoff time.Time) (int64, error) {
	const op = "postgres.Stats.CountActiveEscortsSince"
	return p.count(ctx, op,
		`SELECT COUNT(*) FROM escort_requests WHERE created_at >= $1 AND status = 'active'`, cutoff)
}

func (p *StatsRepo) count(ctx context.Context, op, query string, args ...any) (int64, error) {
	var cnt int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}
