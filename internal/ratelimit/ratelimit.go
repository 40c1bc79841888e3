// Package ratelimit defines the auth rate limiter contract and an
// in-process implementation. The Redis-backed implementation lives in
// internal/redis.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Result contains the result of a rate limit check
type Result struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
	Limit     int
}

// Limiter checks auth attempts per client key (usually the client IP).
type Limiter interface {
	AllowAuth(ctx context.Context, key string) (*Result, error)
}

// LocalLimiter is a per-key token bucket held in process memory. Limits are
// per instance, so use the Redis limiter when running more than one.
// A bucket idle for a full window is back to its burst, so it is dropped.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LocalLimiter{
		buckets:   make(map[string]*bucket),
		limit:     limit,
		window:    window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *LocalLimiter) AllowAuth(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		every := rate.Every(l.window / time.Duration(l.limit))
		b = &bucket{limiter: rate.NewLimiter(every, l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	allowed := b.limiter.AllowN(now, 1)
	remaining := int(b.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   allowed,
		Remaining: remaining,
		ResetIn:   l.window,
		Limit:     l.limit,
	}, nil
}

// sweep drops buckets not seen for a window. Runs at most once per window.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// Len returns the number of tracked keys.
func (l *LocalLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
