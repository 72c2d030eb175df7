package service

import (
	"context"
	"log/slog"
	"time"

	"streetwise/internal/decay"
	"streetwise/internal/domain"
)

const overviewCacheTTL = 30 * time.Second

type statsService struct {
	stats   StatsRepository
	reports ReportRepository
	escorts EscortRepository
	cache   OverviewCache
	logger  *slog.Logger
	now     func() time.Time
}

func NewStatsService(
	stats StatsRepository,
	reports ReportRepository,
	escorts EscortRepository,
	cache OverviewCache,
	logger *slog.Logger,
	now func() time.Time,
) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{
		stats:   stats,
		reports: reports,
		escorts: escorts,
		cache:   cache,
		logger:  logger,
		now:     now,
	}
}

// Overview returns the aggregate dashboard counts, cached for a short
// TTL. Counts are coarse by nature; the live listings themselves never
// go through this cache.
func (s *statsService) Overview(ctx context.Context) (*domain.OverviewCounts, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn("overview cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	now := s.now()

	totalReports, err := s.stats.CountReports(ctx)
	if err != nil {
		return nil, err
	}
	activeReports, err := s.stats.CountReportsSince(ctx, now.Add(-decay.ReportWindow))
	if err != nil {
		return nil, err
	}
	totalEscorts, err := s.stats.CountEscorts(ctx)
	if err != nil {
		return nil, err
	}
	activeEscorts, err := s.stats.CountActiveEscortsSince(ctx, now.Add(-decay.EscortWindow))
	if err != nil {
		return nil, err
	}
	reportsWeek, err := s.stats.CountReportsSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}

	counts := &domain.OverviewCounts{
		TotalReports:  totalReports,
		ActiveReports: activeReports,
		TotalEscorts:  totalEscorts,
		ActiveEscorts: activeEscorts,
		ReportsWeek:   reportsWeek,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, counts, overviewCacheTTL); err != nil {
			s.logger.Warn("overview cache write failed", slog.Any("error", err))
		}
	}

	return counts, nil
}

// Streetwise is the full admin view: every stored report and escort
// request, live or not, with activity computed at read time.
func (s *statsService) Streetwise(ctx context.Context) (*domain.StreetwiseOverview, error) {
	now := s.now()

	reports, err := s.reports.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	escorts, err := s.escorts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	overview := &domain.StreetwiseOverview{
		Reports: make([]domain.AdminReport, 0, len(reports)),
		Escorts: make([]domain.AdminEscort, 0, len(escorts)),
	}

	for _, r := range reports {
		age := decay.Age(r.CreatedAt, now)
		live := decay.ReportLive(r.CreatedAt, now)
		status := "archived"
		if live {
			status = "active"
		}
		overview.Reports = append(overview.Reports, domain.AdminReport{
			ID:          r.ID,
			Type:        r.Type,
			Description: r.Description,
			Lat:         r.Lat,
			Lng:         r.Lng,
			UserID:      r.UserID,
			CreatedAt:   r.CreatedAt,
			AgeHours:    round1(age.Hours()),
			IsActive:    live,
			Status:      status,
		})
		if live {
			overview.Summary.ActiveReports++
		}
	}

	for _, r := range escorts {
		age := decay.Age(r.CreatedAt, now)
		live := decay.EscortLive(r.Status, r.CreatedAt, now)
		overview.Escorts = append(overview.Escorts, domain.AdminEscort{
			ID:         r.ID,
			Message:    r.Message,
			Lat:        r.Lat,
			Lng:        r.Lng,
			UserID:     r.UserID,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
			AgeMinutes: round1(age.Minutes()),
			IsActive:   live,
		})
		if live {
			overview.Summary.ActiveEscorts++
		}
	}

	overview.Summary.TotalReports = len(overview.Reports)
	overview.Summary.TotalEscorts = len(overview.Escorts)

	return overview, nil
}
