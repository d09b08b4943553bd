package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	loginAttemptWindow = 15 * time.Minute
	loginAttemptLimit  = 5
)

// LoginLimiter throttles login attempts per email.
type LoginLimiter interface {
	// Allow counts an attempt against the per-email window and reports
	// whether the attempt is still allowed.
	Allow(ctx context.Context, email string) (bool, error)
	// Reset clears the window after a successful login.
	Reset(ctx context.Context, email string) error
}

type redisLoginLimiter struct {
	rdb *redis.Client
}

// NewLoginLimiter builds a redis-backed limiter. A nil client disables
// rate limiting entirely.
func NewLoginLimiter(rdb *redis.Client) LoginLimiter {
	return &redisLoginLimiter{rdb: rdb}
}

func (l *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	if l.rdb == nil {
		return true, nil
	}

	// INCR and EXPIRE run in one transaction so the counter key can
	// never be left without a TTL; NX keeps the window fixed from the
	// first attempt instead of sliding on every retry
	key := loginRateLimitKey(email)
	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, loginAttemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to count login attempt in redis: %w", err)
	}

	return incr.Val() <= loginAttemptLimit, nil
}

func (l *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	if l.rdb == nil {
		return nil
	}

	return l.rdb.Del(ctx, loginRateLimitKey(email)).Err()
}

func loginRateLimitKey(email string) string {
	return fmt.Sprintf("rate_limit:login:%s", strings.ToLower(email))
}
