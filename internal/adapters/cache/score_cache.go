package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScoreCache caches computed credit scores between evaluations.
// Scores are derivable from stored records at any time, so a cache miss or
// a cache failure is never an error: callers fall back to recomputing.
type ScoreCache interface {
	GetScore(ctx context.Context, customerID uint) (int, bool)
	SetScore(ctx context.Context, customerID uint, score int) error
	Invalidate(ctx context.Context, customerID uint) error
}

// RedisScoreCache implements ScoreCache backed by Redis
type RedisScoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisScoreCache creates a Redis-backed score cache
func NewRedisScoreCache(client *redis.Client, ttl time.Duration) *RedisScoreCache {
	return &RedisScoreCache{client: client, ttl: ttl}
}

func scoreKey(customerID uint) string {
	return fmt.Sprintf("creditdesk:score:%d", customerID)
}

// GetScore returns the cached score for a customer, if present
func (c *RedisScoreCache) GetScore(ctx context.Context, customerID uint) (int, bool) {
	val, err := c.client.Get(ctx, scoreKey(customerID)).Result()
	if err != nil {
		return 0, false
	}
	score, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return score, true
}

// SetScore stores a score with the configured TTL
func (c *RedisScoreCache) SetScore(ctx context.Context, customerID uint, score int) error {
	return c.client.Set(ctx, scoreKey(customerID), strconv.Itoa(score), c.ttl).Err()
}

// Invalidate drops the cached score after the loan history changes
func (c *RedisScoreCache) Invalidate(ctx context.Context, customerID uint) error {
	return c.client.Del(ctx, scoreKey(customerID)).Err()
}
