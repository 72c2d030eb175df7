package service

import (
	"context"
	"time"

	"streetwise/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ReportService is the security-report side of the safety layer:
// append-only creates plus read-time decay and visibility.
type ReportService interface {
	Create(ctx context.Context, req domain.CreateReportRequest, reporter *uuid.UUID) (uuid.UUID, error)
	Live(ctx context.Context) ([]domain.LiveReport, error)
	Archive(ctx context.Context) ([]domain.ArchivedReport, error)
}

type EscortService interface {
	Create(ctx context.Context, req domain.CreateEscortRequest, actor domain.Actor) (uuid.UUID, error)
	Live(ctx context.Context) ([]domain.LiveEscort, error)
}

// ChatService gates every list and post on the parent report's live
// window; a missing report and an expired one are indistinguishable.
type ChatService interface {
	Messages(ctx context.Context, reportID uuid.UUID) ([]*domain.ChatMessage, error)
	Post(ctx context.Context, reportID uuid.UUID, req domain.PostChatMessageRequest, actor domain.Actor) (uuid.UUID, error)
}

type AuthService interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	LogIn(ctx context.Context, req domain.LogInRequest) (string, domain.Actor, error)
	LogOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, actor domain.Actor) (*domain.User, error)
}

type StatsService interface {
	Overview(ctx context.Context) (*domain.OverviewCounts, error)
	Streetwise(ctx context.Context) (*domain.StreetwiseOverview, error)
}

type ActivityService interface {
	ForUser(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error)
}

// Storage-facing contracts, satisfied by internal/storage/postgres.

type ReportRepository interface {
	Create(ctx context.Context, report *domain.SecurityReport) error
	Get(ctx context.Context, id uuid.UUID) (*domain.SecurityReport, error)
	ListSince(ctx context.Context, cutoff time.Time) ([]*domain.SecurityReport, error)
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

type SessionStore interface {
	Save(ctx context.Context, token string, actor domain.Actor) error
	Lookup(ctx context.Context, token string) (domain.Actor, error)
	Revoke(ctx context.Context, token string) error
}

type OverviewCache interface {
	Get(ctx context.Context) (*domain.OverviewCounts, error)
	Set(ctx context.Context, counts *domain.OverviewCounts, ttl time.Duration) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type AlertDequeue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error)
}

type Service struct {
	ReportService   ReportService
	EscortService   EscortService
	ChatService     ChatService
	AuthService     AuthService
	StatsService    StatsService
	ActivityService ActivityService
}

func NewService(
	reportService ReportService,
	escortService EscortService,
	chatService ChatService,
	authService AuthService,
	statsService StatsService,
	activityService ActivityService,
) *Service {
	return &Service{
		ReportService:   reportService,
		EscortService:   escortService,
		ChatService:     chatService,
		AuthService:     authService,
		StatsService:    statsService,
		ActivityService: activityService,
	}
}
