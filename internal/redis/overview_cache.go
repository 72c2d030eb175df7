package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"streetwise/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// OverviewCache keeps the admin dashboard counts for a short TTL so the
// aggregate queries don't run on every dashboard poll. Live/archive
// listings are never cached: their visibility is recomputed per read.
type OverviewCache struct {
	client *goredis.Client
	key    string
}

func NewOverviewCache(r *Redis) *OverviewCache {
	return &OverviewCache{
		client: r.Client,
		key:    "admin:overview",
	}
}

func (c *OverviewCache) Get(ctx context.Context) (*domain.OverviewCounts, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var counts domain.OverviewCounts
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, err
	}

	return &counts, nil
}

func (c *OverviewCache) Set(ctx context.Context, counts *domain.OverviewCounts, ttl time.Duration) error {
	b, err := json.Marshal(counts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
