// Package ratelimit limits API requests per authenticated operator with a
// Redis sliding window. Without Redis every request is allowed.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/rekarton-ge/client-crm/internal/clients/redis"
	"github.com/rekarton-ge/client-crm/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// Result represents the result of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter allowing limit requests per minute per key.
// redis may be nil.
func NewService(redis *redis.Client, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

func windowKey(key string) string {
	return fmt.Sprintf("rl:%s", key)
}

// Check records one request for key and reports whether it is within the limit.
func (s *Service) Check(ctx context.Context, key string) (Result, error) {
	now := s.now()
	if !s.redis.IsEnabled() || s.limit <= 0 {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "rate_limit_key", Value: key})
	rk := windowKey(key)

	count, oldest, err := s.redis.SlidingWindow(ctx, rk, now.Add(-window).UnixMilli())
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rate limit window: %w", err)
	}

	if int(count) >= s.limit {
		resetAt := now.Add(window)
		if len(oldest) > 0 {
			resetAt = time.UnixMilli(int64(oldest[0].Score)).Add(window)
		}
		return Result{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: retryAfterMs(resetAt, now),
		}, nil
	}

	nowMs := now.UnixMilli()
	err = s.redis.ZAdd(ctx, rk, redis.Z{
		Score:  float64(nowMs),
		Member: fmt.Sprintf("%d-%s", nowMs, uuid.NewString()),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to record request: %w", err)
	}
	if err := s.redis.Expire(ctx, rk, 2*window); err != nil {
		s.logger.Error(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

// Status reports the current window for key without recording a request.
func (s *Service) Status(ctx context.Context, key string) (Result, error) {
	now := s.now()
	if !s.redis.IsEnabled() || s.limit <= 0 {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}, nil
	}

	count, err := s.redis.ZCount(ctx, windowKey(key),
		fmt.Sprintf("%d", now.Add(-window).UnixMilli()),
		fmt.Sprintf("%d", now.UnixMilli()))
	if err != nil {
		return Result{}, fmt.Errorf("failed to count rate limit window: %w", err)
	}

	return Result{
		Allowed:   int(count) < s.limit,
		Limit:     s.limit,
		Remaining: max(0, s.limit-int(count)),
		ResetAt:   now.Add(window),
	}, nil
}

func retryAfterMs(resetAt, now time.Time) int {
	d := resetAt.Sub(now)
	if d < 0 {
		return 0
	}
	return int(d.Milliseconds())
}
