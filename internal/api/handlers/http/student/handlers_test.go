package student_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"streetwise/internal/api/handlers/http/student"
	mock_student "streetwise/internal/api/handlers/http/student/mocks"
	"streetwise/internal/domain"
	"streetwise/internal/middleware"
	"streetwise/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withActor(r *http.Request, actor domain.Actor) *http.Request {
	return r.WithContext(middleware.WithActor(r.Context(), actor))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*student.Handler, *mock_student.MockReports, *mock_student.MockEscorts, *mock_student.MockChats, *mock_student.MockActivity) {
	reports := mock_student.NewMockReports(ctrl)
	escorts := mock_student.NewMockEscorts(ctrl)
	chats := mock_student.NewMockChats(ctrl)
	activity := mock_student.NewMockActivity(ctrl)
	h := student.NewHandler(newTestLogger(), reports, escorts, chats, activity)
	return h, reports, escorts, chats, activity
}

// The route is session-gated, but the reporter column is nullable and
// the handler passes nil rather than inventing an actor.
func TestReportCreate_NoActorStoresNilReporter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	wantID := uuid.New()
	reports.EXPECT().
		Create(gomock.Any(), domain.CreateReportRequest{
			Type: "theft", Description: "bike gone", Lat: 55.75, Lng: 37.61,
		}, nil).
		Return(wantID, nil).
		Times(1)

	body := `{"type":"theft","description":"bike gone","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/security-reports", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["id"] != wantID.String() {
		t.Fatalf("expected id=%s got=%s", wantID.String(), got["id"])
	}
}

func TestReportCreate_SessionAttachesReporter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}

	reports.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.CreateReportRequest, reporter *uuid.UUID) (uuid.UUID, error) {
			if reporter == nil || *reporter != actor.UserID {
				t.Fatalf("expected reporter=%s got=%v", actor.UserID, reporter)
			}
			return uuid.New(), nil
		}).
		Times(1)

	body := `{"type":"other","description":"x","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/security-reports", bytes.NewBufferString(body))
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestReportCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/security-reports", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReportCreate_ValidationError_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	reports.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, e.ErrInvalidInput).
		Times(1)

	body := `{"description":"no type","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/security-reports", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.ReportCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestReportLiveList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	reports.EXPECT().
		Live(gomock.Any()).
		Return([]domain.LiveReport{
			{ID: uuid.New(), Type: domain.ReportTheft, DecayWeight: 0.5, Intensity: 0.8, AgeHours: 3.0, IsActive: true},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-reports", nil)
	rr := httptest.NewRecorder()

	h.ReportLiveList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]json.RawMessage](t, rr)
	if _, ok := got["security_reports"]; !ok {
		t.Fatalf("expected security_reports key, body=%s", rr.Body.String())
	}
}

func TestReportArchiveList_NoWeightField(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	reports.EXPECT().
		Archive(gomock.Any()).
		Return([]domain.ArchivedReport{
			{ID: uuid.New(), Type: domain.ReportOther, AgeHours: 8.5, Status: "archived"},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-reports/archive", nil)
	rr := httptest.NewRecorder()

	h.ReportArchiveList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("decay_weight")) {
		t.Fatalf("archive payload must not carry a decay weight, body=%s", rr.Body.String())
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"archived"`)) {
		t.Fatalf("archive payload must carry the archived status, body=%s", rr.Body.String())
	}
}

func TestChatList_ExpiredReport_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, chats, _ := newHandler(ctrl)

	id := uuid.New()
	chats.EXPECT().Messages(gomock.Any(), id).Return(nil, e.ErrNotFound).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-reports/"+id.String()+"/messages", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.ChatList(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestChatList_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-reports/nope/messages", nil)
	req = addChiURLParam(req, "id", "nope")
	rr := httptest.NewRecorder()

	h.ChatList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestChatPost_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, chats, _ := newHandler(ctrl)

	id := uuid.New()
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	wantID := uuid.New()

	chats.EXPECT().
		Post(gomock.Any(), id, domain.PostChatMessageRequest{Message: "omw"}, actor).
		Return(wantID, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/security-reports/"+id.String()+"/messages", bytes.NewBufferString(`{"message":"omw"}`))
	req = addChiURLParam(req, "id", id.String())
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	h.ChatPost(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestEscortCreate_Unauthorized_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, escorts, _, _ := newHandler(ctrl)

	escorts.EXPECT().
		Create(gomock.Any(), gomock.Any(), domain.Actor{}).
		Return(uuid.Nil, e.ErrUnauthorized).
		Times(1)

	body := `{"message":"walk me","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/escort-requests", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.EscortCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d, body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}

func TestEscortLiveList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, escorts, _, _ := newHandler(ctrl)

	escorts.EXPECT().
		Live(gomock.Any()).
		Return([]domain.LiveEscort{
			{ID: uuid.New(), Message: "gym", AgeMinutes: 5.0, IsActive: true},
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/escort-requests", nil)
	rr := httptest.NewRecorder()

	h.EscortLiveList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestMyActivity_NoSession_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/activity", nil)
	rr := httptest.NewRecorder()

	h.MyActivity(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestReportLiveList_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, reports, _, _, _ := newHandler(ctrl)

	reports.EXPECT().Live(gomock.Any()).Return(nil, errors.New("pg down")).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/security-reports", nil)
	rr := httptest.NewRecorder()

	h.ReportLiveList(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
