package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"streetwise/internal/decay"
	"streetwise/internal/domain"
	"streetwise/pkg/e"
	"streetwise/pkg/validator"

	"github.com/google/uuid"
)

type escortService struct {
	repo   EscortRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewEscortService(repo EscortRepository, logger *slog.Logger, now func() time.Time) EscortService {
	if now == nil {
		now = time.Now
	}
	return &escortService{
		repo:   repo,
		logger: logger,
		now:    now,
	}
}

// Create requires a non-anonymous actor and always starts the request
// as active. No operation ever moves it to fulfilled or expired;
// leaving the live listing is purely a read-time effect.
func (s *escortService) Create(ctx context.Context, req domain.CreateEscortRequest, actor domain.Actor) (uuid.UUID, error) {
	if actor.UserID == uuid.Nil {
		return uuid.Nil, e.ErrUnauthorized
	}
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	escort := &domain.EscortRequest{
		ID:        uuid.New(),
		Message:   req.Message,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Status:    domain.EscortActive,
		UserID:    actor.UserID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, escort); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("escort request created",
		slog.String("id", escort.ID.String()),
		slog.String("user_id", actor.UserID.String()),
	)

	return escort.ID, nil
}

func (s *escortService) Live(ctx context.Context) ([]domain.LiveEscort, error) {
	now := s.now()
	cutoff := now.Add(-decay.EscortWindow)

	requests, err := s.repo.ListActiveSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LiveEscort, 0, len(requests))
	for _, r := range requests {
		if !decay.EscortLive(r.Status, r.CreatedAt, now) {
			continue
		}
		age := decay.Age(r.CreatedAt, now)
		result = append(result, domain.LiveEscort{
			ID:         r.ID,
			Message:    r.Message,
			Lat:        r.Lat,
			Lng:        r.Lng,
			AgeMinutes: round1(age.Minutes()),
			IsActive:   true,
			CreatedAt:  r.CreatedAt,
		})
	}

	return result, nil
}
