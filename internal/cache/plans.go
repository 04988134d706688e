package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache stores user plan lookups. The bot checks the plan on nearly every
// command, so hot plans stay out of SQLite.
type PlanCache interface {
	Get(ctx context.Context, userID int64) (string, bool, error)
	Set(ctx context.Context, userID int64, plan string) error
	Invalidate(ctx context.Context, userID int64) error
	Close() error
}

type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisPlanCache connects a plan cache backed by Redis.
func NewRedisPlanCache(addr, password string, db int, ttl time.Duration, prefix string) (PlanCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if prefix == "" {
		prefix = "user_plan"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisPlanCache{client: client, ttl: ttl, prefix: prefix}, nil
}

func (c *redisPlanCache) key(userID int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, userID)
}

func (c *redisPlanCache) Get(ctx context.Context, userID int64) (string, bool, error) {
	if c == nil || c.client == nil {
		return "", false, nil
	}
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisPlanCache) Set(ctx context.Context, userID int64, plan string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, c.key(userID), plan, c.ttl).Err()
}

func (c *redisPlanCache) Invalidate(ctx context.Context, userID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *redisPlanCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// PlanSource resolves a plan from the backing store on cache miss.
type PlanSource func(ctx context.Context, userID int64) (string, error)

// LookupPlan consults the cache first and backfills it on a miss. Cache
// failures fall through to the source rather than failing the lookup.
func LookupPlan(ctx context.Context, c PlanCache, source PlanSource, userID int64) (string, error) {
	if c != nil {
		if plan, ok, err := c.Get(ctx, userID); err == nil && ok {
			return plan, nil
		}
	}
	plan, err := source(ctx, userID)
	if err != nil {
		return "", err
	}
	if c != nil {
		if err := c.Set(ctx, userID, plan); err != nil {
			return plan, nil // cached value is an optimization only
		}
	}
	return plan, nil
}
