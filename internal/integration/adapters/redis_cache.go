package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
)

// summaryKeyPrefix namespaces cache entries per owner.
const summaryKeyPrefix = "dashboard:summary:"

// RedisSummaryCache implements the adapter.SummaryCache interface on Redis.
// Payloads are stored as JSON with a TTL; expiry is the only invalidation.
type RedisSummaryCache struct {
	client *redis.Client
}

// NewRedisSummaryCache creates a new Redis-backed summary cache.
func NewRedisSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &RedisSummaryCache{
		client: client,
	}
}

// Get retrieves a cached summary. A missing key is (nil, nil).
func (c *RedisSummaryCache) Get(ctx context.Context, userID string) (*entity.DashboardSummary, error) {
	raw, err := c.client.Get(ctx, summaryKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read summary cache: %w", err)
	}

	var summary entity.DashboardSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

// Set stores a summary under the owner's key with the given TTL.
func (c *RedisSummaryCache) Set(ctx context.Context, userID string, summary *entity.DashboardSummary, ttl time.Duration) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKeyPrefix+userID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}
