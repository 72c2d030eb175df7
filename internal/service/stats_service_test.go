package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"streetwise/internal/domain"
	"streetwise/internal/service"
	mock_service "streetwise/internal/service/mocks"
)

func TestStatsService_Overview_CacheHitSkipsCounts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)
	escorts := mock_service.NewMockEscortRepository(ctrl)
	cache := mock_service.NewMockOverviewCache(ctrl)

	want := &domain.OverviewCounts{TotalReports: 12, ActiveReports: 3}
	cache.EXPECT().Get(gomock.Any()).Return(want, nil).Times(1)

	svc := service.NewStatsService(stats, reports, escorts, cache, testLogger(), nil)

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != want {
		t.Fatalf("expected the cached counts back, got %+v", got)
	}
}

func TestStatsService_Overview_CacheMissComputesAndStores(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)

	stats := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)
	escorts := mock_service.NewMockEscortRepository(ctrl)
	cache := mock_service.NewMockOverviewCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)

	stats.EXPECT().CountReports(gomock.Any()).Return(int64(20), nil).Times(1)
	stats.EXPECT().CountReportsSince(gomock.Any(), now.Add(-6*time.Hour)).Return(int64(4), nil).Times(1)
	stats.EXPECT().CountEscorts(gomock.Any()).Return(int64(7), nil).Times(1)
	stats.EXPECT().CountActiveEscortsSince(gomock.Any(), now.Add(-30*time.Minute)).Return(int64(2), nil).Times(1)
	stats.EXPECT().CountReportsSince(gomock.Any(), now.Add(-7*24*time.Hour)).Return(int64(15), nil).Times(1)

	cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), 30*time.Second).
		Return(nil).
		Times(1)

	svc := service.NewStatsService(stats, reports, escorts, cache, testLogger(), fixedClock(now))

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalReports != 20 || got.ActiveReports != 4 || got.TotalEscorts != 7 ||
		got.ActiveEscorts != 2 || got.ReportsWeek != 15 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}

func TestStatsService_Overview_CacheFailureFallsThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)
	escorts := mock_service.NewMockEscortRepository(ctrl)
	cache := mock_service.NewMockOverviewCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down")).Times(1)

	stats.EXPECT().CountReports(gomock.Any()).Return(int64(1), nil).Times(1)
	stats.EXPECT().CountReportsSince(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	stats.EXPECT().CountEscorts(gomock.Any()).Return(int64(0), nil).Times(1)
	stats.EXPECT().CountActiveEscortsSince(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(1)

	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	svc := service.NewStatsService(stats, reports, escorts, cache, testLogger(), nil)

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("cache failures must not fail the overview: %v", err)
	}
	if got.TotalReports != 1 {
		t.Fatalf("unexpected counts: %+v", got)
	}
}

func TestStatsService_Streetwise_SplitsLiveAndArchived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	userID := uuid.New()

	stats := mock_service.NewMockStatsRepository(ctrl)
	reports := mock_service.NewMockReportRepository(ctrl)
	escorts := mock_service.NewMockEscortRepository(ctrl)

	reports.EXPECT().
		ListAll(gomock.Any()).
		Return([]*domain.SecurityReport{
			{ID: uuid.New(), Type: domain.ReportTheft, CreatedAt: now.Add(-time.Hour)},
			{ID: uuid.New(), Type: domain.ReportOther, CreatedAt: now.Add(-8 * time.Hour)},
		}, nil).
		Times(1)
	escorts.EXPECT().
		ListAll(gomock.Any()).
		Return([]*domain.EscortRequest{
			{ID: uuid.New(), Status: domain.EscortActive, UserID: userID, CreatedAt: now.Add(-10 * time.Minute)},
			{ID: uuid.New(), Status: domain.EscortActive, UserID: userID, CreatedAt: now.Add(-2 * time.Hour)},
		}, nil).
		Times(1)

	svc := service.NewStatsService(stats, reports, escorts, nil, testLogger(), fixedClock(now))

	got, err := svc.Streetwise(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Reports) != 2 || len(got.Escorts) != 2 {
		t.Fatalf("admin view must list everything: %+v", got.Summary)
	}
	if !got.Reports[0].IsActive || got.Reports[0].Status != "active" {
		t.Fatalf("fresh report must read active: %+v", got.Reports[0])
	}
	if got.Reports[1].IsActive || got.Reports[1].Status != "archived" {
		t.Fatalf("old report must read archived: %+v", got.Reports[1])
	}
	if !got.Escorts[0].IsActive || got.Escorts[1].IsActive {
		t.Fatalf("escort activity flags wrong: %+v", got.Escorts)
	}
	if got.Summary.TotalReports != 2 || got.Summary.ActiveReports != 1 ||
		got.Summary.TotalEscorts != 2 || got.Summary.ActiveEscorts != 1 {
		t.Fatalf("unexpected summary: %+v", got.Summary)
	}
}

func TestActivityService_ForUser_IgnoresWindows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	old := time.Now().Add(-48 * time.Hour)

	reports := mock_service.NewMockReportRepository(ctrl)
	escorts := mock_service.NewMockEscortRepository(ctrl)

	reports.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]*domain.SecurityReport{{ID: uuid.New(), CreatedAt: old}}, nil).
		Times(1)
	escorts.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]*domain.EscortRequest{{ID: uuid.New(), Status: domain.EscortActive, UserID: userID, CreatedAt: old}}, nil).
		Times(1)

	svc := service.NewActivityService(reports, escorts)

	got, err := svc.ForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Reports) != 1 || len(got.Escorts) != 1 {
		t.Fatalf("own history must list regardless of age: %+v", got)
	}
}
