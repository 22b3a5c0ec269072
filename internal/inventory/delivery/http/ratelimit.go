package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tair/inventory-tracker/pkg/auth"
	"github.com/tair/inventory-tracker/pkg/logger"
	"github.com/tair/inventory-tracker/pkg/response"
)

// RateLimiter is a sliding-window limiter backed by a Redis sorted set per caller
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter returns nil when there is no Redis client or no positive limit
func NewRateLimiter(client *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	if client == nil || maxRequests <= 0 || window <= 0 {
		return nil
	}
	return &RateLimiter{redis: client, maxRequests: maxRequests, window: window, now: time.Now}
}

// Middleware rejects callers over the limit with 429. Redis failures let the request through.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identifier := clientIP(r)
		// Authenticated callers are limited by name rather than address
		if actor := auth.ActorFromContext(r.Context()); actor != auth.DefaultActor {
			identifier = "user:" + actor
		}

		allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), identifier)
		if err != nil {
			logger.Error(r.Context()).
				Err(err).
				Str("identifier", identifier).
				Msg("Rate limiter error")
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			logger.Warn(r.Context()).
				Str("identifier", identifier).
				Int("limit", rl.maxRequests).
				Msg("Rate limit exceeded")

			retryAfter := int(time.Until(resetTime).Round(time.Second).Seconds())
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.JSON(w, http.StatusTooManyRequests, response.Response{
				Success: false,
				Error:   fmt.Sprintf("Too many requests. Try again in %ds", retryAfter),
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := "ratelimit:" + identifier
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := countCmd.Val()
	remaining := rl.maxRequests - int(count) - 1
	if remaining < 0 {
		remaining = 0
	}

	return count < int64(rl.maxRequests), remaining, now.Add(rl.window), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
