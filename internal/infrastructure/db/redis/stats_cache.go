package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirehub/hirehub-api/internal/api/metrics"
	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// StatsCache is the short-lived dashboard stats cache backed by Redis.
// Key format: stats:<user_type>:<user_id>
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps the given Redis client. ttl bounds staleness; the
// contract stays "computed fresh" from the caller's point of view.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context, userID string, userType domain.UserType) (*ports.Stats, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID, userType)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		// Corrupt entry: treat as a miss, it will be overwritten.
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return &stats, true, nil
}

func (c *StatsCache) Set(ctx context.Context, userID string, userType domain.UserType, stats *ports.Stats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(userID, userType), raw, c.ttl).Err()
}

func (c *StatsCache) key(userID string, userType domain.UserType) string {
	return fmt.Sprintf("stats:%s:%s", userType, userID)
}
