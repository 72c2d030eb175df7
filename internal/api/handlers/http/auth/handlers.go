package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"streetwise/internal/domain"
	"streetwise/internal/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Auth interface {
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error)
	LogIn(ctx context.Context, req domain.LogInRequest) (string, domain.Actor, error)
	LogOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, actor domain.Actor) (*domain.User, error)
}

type Handler struct {
	logger *slog.Logger
	Auth   Auth
}

func NewHandler(logger *slog.Logger, auth Auth) *Handler {
	return &Handler{logger: logger, Auth: auth}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	user, err := h.Auth.SignUp(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user signed up", slog.String("id", user.ID.String()))
	h.writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.LogInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	token, actor, err := h.Auth.LogIn(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user logged in", slog.String("id", actor.UserID.String()))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"token":   token,
		"user_id": actor.UserID,
		"role":    actor.Role,
	})
}

func (h *Handler) LogOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	if err := h.Auth.LogOut(r.Context(), token); err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	user, err := h.Auth.CurrentUser(r.Context(), actor)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}
