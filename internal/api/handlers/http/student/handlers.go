package student

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"streetwise/internal/domain"
	"streetwise/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Reports interface {
	Create(ctx context.Context, req domain.CreateReportRequest, reporter *uuid.UUID) (uuid.UUID, error)
	Live(ctx context.Context) ([]domain.LiveReport, error)
	Archive(ctx context.Context) ([]domain.ArchivedReport, error)
}

type Escorts interface {
	Create(ctx context.Context, req domain.CreateEscortRequest, actor domain.Actor) (uuid.UUID, error)
	Live(ctx context.Context) ([]domain.LiveEscort, error)
}

type Chats interface {
	Messages(ctx context.Context, reportID uuid.UUID) ([]*domain.ChatMessage, error)
	Post(ctx context.Context, reportID uuid.UUID, req domain.PostChatMessageRequest, actor domain.Actor) (uuid.UUID, error)
}

type Activity interface {
	ForUser(ctx context.Context, userID uuid.UUID) (*domain.UserActivity, error)
}

type Handler struct {
	logger   *slog.Logger
	Reports  Reports
	Escorts  Escorts
	Chats    Chats
	Activity Activity
}

func NewHandler(logger *slog.Logger, reports Reports, escorts Escorts, chats Chats, activity Activity) *Handler {
	return &Handler{
		logger:   logger,
		Reports:  reports,
		Escorts:  escorts,
		Chats:    chats,
		Activity: activity,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// ReportCreate stores a new report. The route requires a student
// session; the reporter column itself stays nullable, so the handler
// tolerates a missing actor rather than assuming one.
func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	var reporter *uuid.UUID
	if actor, ok := middleware.ActorFromContext(r.Context()); ok {
		reporter = &actor.UserID
	}

	id, err := h.Reports.Create(r.Context(), req, reporter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("security report created", slog.String("id", id.String()), slog.Bool("anonymous", reporter == nil))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) ReportLiveList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.Live(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"security_reports": reports,
		"count":            len(reports),
	})
}

func (h *Handler) ReportArchiveList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.Archive(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"security_reports": reports,
		"count":            len(reports),
	})
}

func (h *Handler) ChatList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid report id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	messages, err := h.Chats.Messages(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if messages == nil {
		messages = []*domain.ChatMessage{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (h *Handler) ChatPost(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid report id", slog.String("id", idStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.PostChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	msgID, err := h.Chats.Post(r.Context(), id, req, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("chat message posted", slog.String("report_id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": msgID.String()})
}

func (h *Handler) EscortCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.CreateEscortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	actor, _ := middleware.ActorFromContext(r.Context())

	id, err := h.Escorts.Create(r.Context(), req, actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("escort request created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) EscortLiveList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Escorts.Live(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"escort_requests": requests,
		"count":           len(requests),
	})
}

func (h *Handler) MyActivity(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	activity, err := h.Activity.ForUser(r.Context(), actor.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, activity)
}
