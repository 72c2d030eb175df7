package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"streetwise/internal/decay"
	"streetwise/internal/domain"
	"streetwise/pkg/e"
	"streetwise/pkg/validator"

	"github.com/google/uuid"
)

type reportService struct {
	repo   ReportRepository
	alerts AlertQueue
	logger *slog.Logger
	now    func() time.Time
}

func NewReportService(repo ReportRepository, alerts AlertQueue, logger *slog.Logger, now func() time.Time) ReportService {
	if now == nil {
		now = time.Now
	}
	return &reportService{
		repo:   repo,
		alerts: alerts,
		logger: logger,
		now:    now,
	}
}

// Create persists a report with a server-assigned timestamp. The type
// string is stored as-is; only presence is validated. A nil reporter
// means an anonymous report.
func (s *reportService) Create(ctx context.Context, req domain.CreateReportRequest, reporter *uuid.UUID) (uuid.UUID, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	report := &domain.SecurityReport{
		ID:          uuid.New(),
		Type:        domain.ReportType(req.Type),
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		UserID:      reporter,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("security report created",
		slog.String("id", report.ID.String()),
		slog.String("type", string(report.Type)),
	)

	if s.alerts != nil {
		payload := domain.AlertPayload{
			ReportID:    report.ID,
			Type:        report.Type,
			Description: report.Description,
			Lat:         report.Lat,
			Lng:         report.Lng,
			CreatedAt:   report.CreatedAt,
		}
		if err := s.alerts.Enqueue(ctx, payload); err != nil {
			// Delivery is best-effort; the report itself is committed.
			s.logger.Error("enqueue alert failed", slog.Any("error", err))
		}
	}

	return report.ID, nil
}

// Live returns the heat-map payloads. The SQL cutoff only trims the
// scan; the weight is recomputed here against the current instant and
// anything at exactly zero weight has already moved to the archive.
func (s *reportService) Live(ctx context.Context) ([]domain.LiveReport, error) {
	now := s.now()
	cutoff := now.Add(-decay.ReportWindow)

	reports, err := s.repo.ListSince(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LiveReport, 0, len(reports))
	for _, r := range reports {
		if !decay.ReportLive(r.CreatedAt, now) {
			continue
		}
		age := decay.Age(r.CreatedAt, now)
		result = append(result, domain.LiveReport{
			ID:          r.ID,
			Type:        r.Type,
			Description: r.Description,
			Lat:         r.Lat,
			Lng:         r.Lng,
			DecayWeight: decay.Weight(age),
			Intensity:   decay.Intensity(r.Type),
			AgeHours:    round1(age.Hours()),
			IsActive:    true,
			CreatedAt:   r.CreatedAt,
		})
	}

	return result, nil
}

// Archive lists everything past the live window. No weight field: an
// archived report is historical record, not graded heat.
func (s *reportService) Archive(ctx context.Context) ([]domain.ArchivedReport, error) {
	now := s.now()
	cutoff := now.Add(-decay.ReportWindow)

	reports, err := s.repo.ListBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ArchivedReport, 0, len(reports))
	for _, r := range reports {
		if !decay.ReportArchived(r.CreatedAt, now) {
			continue
		}
		age := decay.Age(r.CreatedAt, now)
		result = append(result, domain.ArchivedReport{
			ID:          r.ID,
			Type:        r.Type,
			Description: r.Description,
			Lat:         r.Lat,
			Lng:         r.Lng,
			AgeHours:    round1(age.Hours()),
			Status:      "archived",
			CreatedAt:   r.CreatedAt,
		})
	}

	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
