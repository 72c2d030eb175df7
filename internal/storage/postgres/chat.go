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

type ChatRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewChatRepo(pool *pgxpool.Pool, logger *slog.Logger) *ChatRepo {
	return &ChatRepo{pool: pool, logger: logger}
}

func (p *ChatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	const op = "postgres.Chat.Create"

	const query = `
		INSERT INTO chat_messages (id, report_id, message, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		msg.ID,
		msg.ReportID,
		msg.Message,
		msg.UserID,
		msg.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ChatRepo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]*domain.ChatMessage, error) {
	const op = "postgres.Chat.ListByReport"

	const query = `
		SELECT id, report_id, message, user_id, created_at
		FROM chat_messages
		WHERE report_id = $1
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query, reportID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.ReportID, &m.Message, &m.UserID, &m.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return messages, nil
}
