package statuscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"adpilot/internal/core/domain"
	"adpilot/internal/metrics"
)

// Redis shares the cache between workers. Redis expiry enforces the
// freshness window. Failures degrade to cache misses.
type Redis struct {
	client  *redis.Client
	ttl     time.Duration
	prefix  string
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, ttl time.Duration, prefix string, m *metrics.Metrics, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, ttl: ttl, prefix: prefix, metrics: m, logger: logger}
}

// Connect parses a redis:// URL and verifies connectivity.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rc := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rc, nil
}

func (c *Redis) key(externalID string) string {
	return c.prefix + externalID
}

// Get returns the cached snapshot. Read and decode failures count as misses.
func (c *Redis) Get(ctx context.Context, externalID string) (domain.ExternalStatus, bool) {
	var st domain.ExternalStatus
	raw, err := c.client.Get(ctx, c.key(externalID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("status cache read failed", "external_id", externalID, "error", err)
		}
		c.metrics.IncCacheLookup(false)
		return st, false
	}
	if err = json.Unmarshal(raw, &st); err != nil {
		c.logger.Warn("status cache entry malformed", "external_id", externalID, "error", err)
		c.metrics.IncCacheLookup(false)
		return st, false
	}
	c.metrics.IncCacheLookup(true)
	return st, true
}

// Set stores a snapshot with the cache TTL. Write failures are only logged.
func (c *Redis) Set(ctx context.Context, st domain.ExternalStatus) {
	if st.ObservedAt.IsZero() {
		st.ObservedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, c.key(st.ExternalID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("status cache write failed", "external_id", st.ExternalID, "error", err)
	}
}

// Invalidate deletes the snapshot of externalID.
func (c *Redis) Invalidate(ctx context.Context, externalID string) {
	if err := c.client.Del(ctx, c.key(externalID)).Err(); err != nil {
		c.logger.Warn("status cache invalidate failed", "external_id", externalID, "error", err)
	}
}
