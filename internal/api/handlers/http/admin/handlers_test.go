package admin_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"streetwise/internal/api/handlers/http/admin"
	mock_admin "streetwise/internal/api/handlers/http/admin/mocks"
	"streetwise/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	h := admin.NewHandler(newTestLogger(), stats)

	stats.EXPECT().
		Overview(gomock.Any()).
		Return(&domain.OverviewCounts{TotalReports: 10, ActiveReports: 2}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"total_reports":10`)) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestAdminStreetwise_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	h := admin.NewHandler(newTestLogger(), stats)

	stats.EXPECT().
		Streetwise(gomock.Any()).
		Return(&domain.StreetwiseOverview{
			Reports: []domain.AdminReport{{ID: uuid.New(), Status: "archived"}},
			Escorts: []domain.AdminEscort{},
			Summary: domain.StreetwiseSummary{TotalReports: 1},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/streetwise", nil)
	rr := httptest.NewRecorder()

	h.AdminStreetwise(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("summary")) {
		t.Fatalf("expected summary in body: %s", rr.Body.String())
	}
}

func TestAdminStats_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStats(ctrl)
	h := admin.NewHandler(newTestLogger(), stats)

	stats.EXPECT().Overview(gomock.Any()).Return(nil, errors.New("pg down")).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
