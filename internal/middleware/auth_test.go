package middleware_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/google/uuid"

	"streetwise/internal/domain"
	"streetwise/internal/middleware"
	"streetwise/pkg/e"
)

type stubSessions struct {
	actors map[string]domain.Actor
}

func (s *stubSessions) Lookup(_ context.Context, token string) (domain.Actor, error) {
	actor, ok := s.actors[token]
	if !ok {
		return domain.Actor{}, e.ErrUnauthorized
	}
	return actor, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func actorEcho() (http.Handler, *domain.Actor, *bool) {
	var got domain.Actor
	var found bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = middleware.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return h, &got, &found
}

func TestAuthenticate_ValidToken(t *testing.T) {
	t.Parallel()

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	sessions := &stubSessions{actors: map[string]domain.Actor{"tok123": actor}}

	next, got, found := actorEcho()
	h := middleware.Authenticate(sessions, newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok123")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if !*found {
		t.Fatalf("expected actor on context")
	}
	if got.UserID != actor.UserID {
		t.Fatalf("wrong actor: %+v", *got)
	}
}

func TestAuthenticate_NoTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{actors: map[string]domain.Actor{}}

	next, _, found := actorEcho()
	h := middleware.Authenticate(sessions, newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("anonymous request must pass through, got %d", rr.Code)
	}
	if *found {
		t.Fatalf("anonymous request must not carry an actor")
	}
}

func TestAuthenticate_StaleTokenIsAnonymous(t *testing.T) {
	t.Parallel()

	sessions := &stubSessions{actors: map[string]domain.Actor{}}

	next, _, found := actorEcho()
	h := middleware.Authenticate(sessions, newTestLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || *found {
		t.Fatalf("stale token must degrade to anonymous, code=%d found=%v", rr.Code, *found)
	}
}

func TestRequireStudent_Anonymous_401(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireStudent(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRequireStudent_StudentPasses(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireStudent(next)

	student := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), student))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestRequireStudent_AdminForbidden(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireStudent(next)

	admin := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestRequireAdmin_StudentForbidden(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireAdmin(next)

	student := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), student))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d", http.StatusForbidden, rr.Code)
	}
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireAdmin(next)

	admin := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestRequireAdmin_Anonymous_401(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireAdmin(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}
