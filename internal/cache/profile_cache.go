// Package cache provides a Redis read-through cache for computed numerology
// profiles. Profiles change only when a user recalculates, so a short TTL
// plus invalidate-on-write keeps Redis and Postgres consistent enough.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/pkg/logger"
)

// ProfileCache stores profiles as JSON values keyed by user id.
// All operations are best-effort: a Redis failure degrades to a database
// read, it never fails the request.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProfileCache creates a cache with the given TTL.
func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

func profileKey(userID string) string {
	return "numerology:profile:" + userID
}

// Get returns the cached profile for a user, if present.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.Profile, bool) {
	data, err := c.rdb.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Warn("profile cache read failed", "user_id", userID, "error", err.Error())
		return nil, false
	}

	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		// Corrupt entry; drop it so the next write replaces it.
		c.rdb.Del(ctx, profileKey(userID))
		return nil, false
	}
	return &p, true
}

// Set stores a profile with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, p *domain.Profile) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, profileKey(p.UserID), data, c.ttl).Err(); err != nil {
		logger.Warn("profile cache write failed", "user_id", p.UserID, "error", err.Error())
	}
}

// Invalidate removes a user's cached profile.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) {
	if err := c.rdb.Del(ctx, profileKey(userID)).Err(); err != nil {
		logger.Warn("profile cache invalidate failed", "user_id", userID, "error", err.Error())
	}
}
