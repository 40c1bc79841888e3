package redis

import (
	"context"
	"fmt"
	"time"

	"places-api/internal/ratelimit"

	goredis "github.com/redis/go-redis/v9"
)

// Key pattern: ratelimit:{ip}:auth, TTL = window.

// fixedWindowScript atomically increments the counter for KEYS[1] if it is
// below ARGV[1] and returns {allowed, remaining, ttl}.
var fixedWindowScript = goredis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		current = 0
	else
		current = tonumber(current)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	if current < limit then
		redis.call('INCR', key)
		if ttl == window then
			redis.call('EXPIRE', key, window)
		end
		return {1, limit - current - 1, ttl}
	else
		return {0, 0, ttl}
	end
`)

// RateLimiter handles auth rate limiting using Redis, shared by every API
// instance pointing at the same Redis.
type RateLimiter struct {
	client *goredis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *goredis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, limit: limit, window: window}
}

// AllowAuth checks if an IP can make an auth attempt
func (r *RateLimiter) AllowAuth(ctx context.Context, ip string) (*ratelimit.Result, error) {
	key := fmt.Sprintf("ratelimit:%s:auth", ip)
	return r.checkLimit(ctx, key)
}

// ResetAuth resets auth rate limit for an IP
func (r *RateLimiter) ResetAuth(ctx context.Context, ip string) error {
	return r.client.Del(ctx, fmt.Sprintf("ratelimit:%s:auth", ip)).Err()
}

func (r *RateLimiter) checkLimit(ctx context.Context, key string) (*ratelimit.Result, error) {
	result, err := fixedWindowScript.Run(ctx, r.client, []string{key}, r.limit, int(r.window.Seconds())).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) < 3 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	allowed, _ := resultSlice[0].(int64)
	remaining, _ := resultSlice[1].(int64)
	ttl, _ := resultSlice[2].(int64)

	return &ratelimit.Result{
		Allowed:   allowed == 1,
		Remaining: int(remaining),
		ResetIn:   time.Duration(ttl) * time.Second,
		Limit:     r.limit,
	}, nil
}
