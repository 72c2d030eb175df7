package service

import (
	"context"

	"streetwise/internal/domain"

	"github.com/google/uuid"
)

type activityService struct {
	reports ReportRepository
	escorts EscortRepository
}

func NewActivityService(reports ReportRepository, escorts EscortRepository) ActivityService {
	return &activityService{
		reports: reports,
		escorts: escorts,
	}
}

// ForUser lists a student's own submissions. Live windows do not apply
// here: people can always see what they reported.
func (s *activityService) ForUser(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error) {
	reports, err := s.reports.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	escorts, err := s.escorts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity := &domain.UserActivity{
		Reports: make([]domain.SecurityReport, 0, len(reports)),
		Escorts: make([]domain.EscortRequest, 0, len(escorts)),
	}
	for _, r := range reports {
		activity.Reports = append(activity.Reports, *r)
	}
	for _, r := range escorts {
		activity.Escorts = append(activity.Escorts, *r)
	}

	return activity, nil
}
