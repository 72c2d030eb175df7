package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"streetwise/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// SessionLookup resolves a bearer token to the actor it was issued to.
// Satisfied by the redis session store.
type SessionLookup interface {
	Lookup(ctx context.Context, token string) (domain.Actor, error)
}

// ActorFromContext returns the authenticated actor, if any. The second
// return is false on anonymous requests.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}

// WithActor attaches an actor to the context the same way Authenticate
// does.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// Authenticate resolves an optional Authorization bearer token into an
// actor on the request context. Requests without a token pass through
// anonymous; role enforcement is a separate middleware so public
// routes can still see who is asking.
func Authenticate(sessions SessionLookup, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := sessions.Lookup(r.Context(), token)
			if err != nil {
				// Stale token: treat as anonymous rather than failing
				// the request outright.
				logger.Debug("session lookup failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStudent rejects anonymous requests with 401 and authenticated
// non-students with 403. Admin sessions use the /admin surface.
func RequireStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if !actor.IsStudent() {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admins with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		if !actor.IsAdmin() {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken extracts the raw token from the Authorization header,
// empty when absent or malformed.
func BearerToken(r *http.Request) string {
	return bearerToken(r)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
