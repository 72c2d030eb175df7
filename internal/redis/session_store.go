package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"streetwise/internal/domain"
	"streetwise/pkg/e"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// sessionData is what a bearer token resolves to.
type sessionData struct {
	UserID    uuid.UUID   `json:"user_id"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// SessionStore keeps bearer-token sessions in redis with a TTL.
// Expiry is redis-side; a vanished key reads as unauthorized.
type SessionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewSessionStore(r *Redis, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: r.Client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (s *SessionStore) key(token string) string {
	return s.prefix + token
}

func (s *SessionStore) Save(ctx context.Context, token string, actor domain.Actor) error {
	data := sessionData{
		UserID:    actor.UserID,
		Role:      actor.Role,
		CreatedAt: time.Now().UTC(),
	}

	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(token), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (domain.Actor, error) {
	b, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.Actor{}, e.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("lookup session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal(b, &data); err != nil {
		return domain.Actor{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return domain.Actor{UserID: data.UserID, Role: data.Role}, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
