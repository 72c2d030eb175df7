package postgres

import (
	"context"
	"log/slog"
	"time"

	"streetwise/internal/domain"
	"streetwise/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EscortRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEscortRepo(pool *pgxpool.Pool, logger *slog.Logger) *EscortRepo {
	return &EscortRepo{pool: pool, logger: logger}
}

const escortColumns = `id, message, lat, lng, status, user_id, created_at`

func (p *EscortRepo) Create(ctx context.Context, req *domain.EscortRequest) error {
	const op = "postgres.Escort.Create"

	const query = `
		INSERT INTO escort_requests (id, message, lat, lng, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = domain.EscortActive
	}

	_, err := p.pool.Exec(ctx, query,
		req.ID,
		req.Message,
		req.Lat,
		req.Lng,
		req.Status,
		req.UserID,
		req.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EscortRepo) ListActiveSince(ctx context.Context, cutoff time.Time) ([]*domain.EscortRequest, error) {
	const op = "postgres.Escort.ListActiveSince"

	const query = `
		SELECT ` + escortColumns + `
		FROM escort_requests
		WHERE created_at >= $1 AND status = 'active'
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, cutoff)
}

func (p *EscortRepo) ListAll(ctx context.Context) ([]*domain.EscortRequest, error) {
	const op = "postgres.Escort.ListAll"

	const query = `
		SELECT ` + escortColumns + `
		FROM escort_requests
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query)
}

func (p *EscortRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EscortRequest, error) {
	const op = "postgres.Escort.ListByUser"

	const query = `
		SELECT ` + escortColumns + `
		FROM escort_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return p.list(ctx, op, query, userID)
}

func (p *EscortRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.EscortRequest, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var requests []*domain.EscortRequest
	for rows.Next() {
		var r domain.EscortRequest
		if err := rows.Scan(
			&r.ID, &r.Message, &r.Lat, &r.Lng, &r.Status, &r.UserID, &r.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		requests = append(requests, &r)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return requests, nil
}
