package cache

import (
	"context"
	"errors"
	"time"

	"rental-backoffice/internal/pkg/config"
	"rental-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	revocationKeyPrefix = "refresh_token:revoked:"
	valueRevoked        = "1"
	valueActive         = "0"
)

// NewRedisClient builds a client from a redis:// URL. The connection is lazy;
// a dead Redis only turns into cache misses.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	return redis.NewClient(opt), nil
}

// TokenRevocationCache keeps a short-lived copy of refresh token revocation state.
// PostgreSQL stays the source of truth.
type TokenRevocationCache struct {
	rdb     redis.Cmdable
	timeout time.Duration
}

func NewTokenRevocationCache(rdb redis.Cmdable, cfg config.RedisConfig) *TokenRevocationCache {
	return &TokenRevocationCache{rdb: rdb, timeout: cfg.OperationTimeout}
}

func (c *TokenRevocationCache) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	val, err := c.rdb.Get(ctx, key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, errs.Wrap(err, "revocation cache get")
	}
	return val == valueRevoked, true, nil
}

func (c *TokenRevocationCache) Remember(ctx context.Context, jti uuid.UUID, revoked bool, ttl time.Duration) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	val := valueActive
	if revoked {
		val = valueRevoked
	}
	if err := c.rdb.Set(ctx, key(jti), val, ttl).Err(); err != nil {
		return errs.Wrap(err, "revocation cache set")
	}
	return nil
}

func (c *TokenRevocationCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func key(jti uuid.UUID) string {
	return revocationKeyPrefix + jti.String()
}
