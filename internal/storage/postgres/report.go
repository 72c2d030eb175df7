package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"streetwise/internal/domain"
	"streetwise/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

const reportColumns = `id, type, description, lat, lng, user_id, created_at`

func (p *ReportRepo) Create(ctx context.Context, report *domain.SecurityReport) error {
	const op = "postgres.Report.Create"

	const query = `
		INSERT INTO security_reports (id, type, description, lat, lng, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		report.ID,
		report.Type,
		report.Description,
		report.Lat,
		report.Lng,
		report.UserID,
		report.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ReportRepo) Get(ctx context.Context, id uuid.UUID) (*domain.SecurityReport, error) {
	const op = "postgres.Report.Get"

	const query = `
		SELECT ` + reportColumns + `
		FROM security_reports
		WHERE id = $1
	`

	var r domain.SecurityReport
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&r.ID, &r.Type, &r.Description, &r.Lat, &r.Lng, &r.UserID, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &r, nil
}

func (p *ReportRepo) ListSince(ctx context.Context, cutoff time.Time) ([]*domain.SecurityReport, error) {
	const op = "postgres.Report.ListSince"

	const query = `
		SELECT ` + reportColumns + `
		FROM security_reports
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, cutoff)
}

func (p *ReportRepo) ListBefore(ctx context.Context, cutoff time.Time) ([]*domain.SecurityReport, error) {
	const op = "postgres.Report.ListBefore"

	const query = `
		SELECT ` + reportColumns + `
		FROM security_reports
		WHERE created_at <= $1
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, cutoff)
}

func (p *ReportRepo) ListAll(ctx context.Context) ([]*domain.SecurityReport, error) {
	const op = "postgres.Report.ListAll"

	const query = `
		SELECT ` + reportColumns + `
		FROM security_reports
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query)
}

func (p *ReportRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SecurityReport, error) {
	const op = "postgres.Report.ListByUser"

	const query = `
		SELECT ` + reportColumns + `
		FROM security_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, userID)
}

func (p *ReportRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.SecurityReport, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var reports []*domain.SecurityReport
	for rows.Next() {
		var r domain.SecurityReport
		if err := rows.Scan(
			&r.ID, &r.Type, &r.Description, &r.Lat, &r.Lng, &r.UserID, &r.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return reports, nil
}
