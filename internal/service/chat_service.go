package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"streetwise/internal/decay"
	"streetwise/internal/domain"
	"streetwise/pkg/e"
	"streetwise/pkg/validator"

	"github.com/google/uuid"
)

type chatService struct {
	reports ReportRepository
	chats   ChatRepository
	logger  *slog.Logger
	now     func() time.Time
}

func NewChatService(reports ReportRepository, chats ChatRepository, logger *slog.Logger, now func() time.Time) ChatService {
	if now == nil {
		now = time.Now
	}
	return &chatService{
		reports: reports,
		chats:   chats,
		logger:  logger,
		now:     now,
	}
}

// gate re-checks the parent report's chat window on every call. A
// report that does not exist and one that has decayed past the window
// both come back as ErrNotFound, so an expired report's prior
// existence is never confirmed.
func (s *chatService) gate(ctx context.Context, reportID uuid.UUID) error {
	report, err := s.reports.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.ErrNotFound
		}
		return err
	}
	if !decay.ReportChatOpen(report.CreatedAt, s.now()) {
		return e.ErrNotFound
	}
	return nil
}

func (s *chatService) Messages(ctx context.Context, reportID uuid.UUID) ([]*domain.ChatMessage, error) {
	if err := s.gate(ctx, reportID); err != nil {
		return nil, err
	}
	return s.chats.ListByReport(ctx, reportID)
}

func (s *chatService) Post(ctx context.Context, reportID uuid.UUID, req domain.PostChatMessageRequest, actor domain.Actor) (uuid.UUID, error) {
	if actor.UserID == uuid.Nil {
		return uuid.Nil, e.ErrUnauthorized
	}
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}
	if err := s.gate(ctx, reportID); err != nil {
		return uuid.Nil, err
	}

	msg := &domain.ChatMessage{
		ID:        uuid.New(),
		ReportID:  reportID,
		Message:   req.Message,
		UserID:    actor.UserID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.chats.Create(ctx, msg); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("chat message posted",
		slog.String("report_id", reportID.String()),
		slog.String("message_id", msg.ID.String()),
	)

	return msg.ID, nil
}
