package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitstack/exercise-tracker/internal/models"
)

const keyUser = "user:"

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// UserCache caches user documents in Redis, keyed by hex id. A nil *UserCache
// is valid and behaves as an always-miss cache, so the service runs without
// Redis configured.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached user or nil on miss.
func (c *UserCache) Get(ctx context.Context, id string) (*models.User, error) {
	if c == nil {
		return nil, nil
	}
	b, err := c.rdb.Get(ctx, keyUser+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Set stores the user document under its id.
func (c *UserCache) Set(ctx context.Context, u *models.User) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyUser+u.ID.Hex(), b, c.ttl).Err()
}

// Invalidate removes the cached document after a write to it.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, keyUser+id).Err()
}
