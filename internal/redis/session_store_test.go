package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"streetwise/internal/domain"
	"streetwise/pkg/e"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	return &Redis{Client: client}, s
}

func TestSessionStore_SaveAndLookup(t *testing.T) {
	r, s := setupTestRedis(t)
	defer r.Close()
	defer s.Close()

	store := NewSessionStore(r, time.Hour)
	ctx := context.Background()

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	if err := store.Save(ctx, "tok-abc", actor); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Lookup(ctx, "tok-abc")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got.UserID != actor.UserID || got.Role != domain.RoleStudent {
		t.Fatalf("unexpected actor: got=%+v want=%+v", got, actor)
	}
}

func TestSessionStore_Lookup_UnknownToken(t *testing.T) {
	r, s := setupTestRedis(t)
	defer r.Close()
	defer s.Close()

	store := NewSessionStore(r, time.Hour)

	_, err := store.Lookup(context.Background(), "no-such-token")
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionStore_Lookup_ExpiredToken(t *testing.T) {
	r, s := setupTestRedis(t)
	defer r.Close()
	defer s.Close()

	store := NewSessionStore(r, time.Minute)
	ctx := context.Background()

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	if err := store.Save(ctx, "tok-exp", actor); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s.FastForward(2 * time.Minute)

	_, err := store.Lookup(ctx, "tok-exp")
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after TTL, got %v", err)
	}
}

func TestSessionStore_Revoke(t *testing.T) {
	r, s := setupTestRedis(t)
	defer r.Close()
	defer s.Close()

	store := NewSessionStore(r, time.Hour)
	ctx := context.Background()

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleAdmin}
	if err := store.Save(ctx, "tok-admin", actor); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Revoke(ctx, "tok-admin"); err != nil {
		t.Fatalf("Revoke failed: %v", err)
	}

	_, err := store.Lookup(ctx, "tok-admin")
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after revoke, got %v", err)
	}
}
