package postgres

import (
	"context"
	"time"

	"streetwise/internal/domain"

	"github.com/google/uuid"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.SecurityReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SecurityReport, error)
	// ListSince returns reports created at or after the cutoff, the
	// coarse SQL side of the live window. The exact predicate is always
	// re-applied in the service from created_at vs now.
	ListSince(ctx context.Context, cutoff time.Time) ([]*domain.SecurityReport, error)
	// ListBefore returns reports created at or before the cutoff
	// (the archive side).
	ListBefore(ctx context.Context, cutoff time.Time) ([]*domain.SecurityReport, error)
	ListAll(ctx context.Context) ([]*domain.SecurityReport, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SecurityReport, error)
}

type EscortRepository interface {
	Create(ctx context.Context, req *domain.EscortRequest) error
	ListActiveSince(ctx context.Context, cutoff time.Time) ([]*domain.EscortRequest, error)
	ListAll(ctx context.Context) ([]*domain.EscortRequest, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EscortRequest, error)
}

type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]*domain.ChatMessage, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type StatsRepository interface {
	CountReports(ctx context.Context) (int64, error)
	CountReportsSince(ctx context.Context, cutoff time.Time) (int64, error)
	CountEscorts(ctx context.Context) (int64, error)
	CountActiveEscortsSince(ctx context.Context, cutoff time.Time) (int64, error)
}

func (p *Postgres) Reports() ReportRepository { return p.Report }
func (p *Postgres) Escorts() EscortRepository { return p.Escort }
func (p *Postgres) Chats() ChatRepository     { return p.Chat }
func (p *Postgres) Users() UserRepository     { return p.User }
func (p *Postgres) Stats() StatsRepository    { return p.Stat }
