// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// rateLimitEntry tracks rate limit data for a single key in the in-process
// fallback store.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based rate limiting backed by Redis. When Redis is
// unreachable it degrades to an in-process window map rather than rejecting
// or waving through unchecked traffic permanently.
type RateLimiter struct {
	redisClient    *redis.Client
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings. A nil
// client means the limiter runs purely in-process.
func NewRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(redisClient, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(redisClient *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient:    redisClient,
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.redisClient != nil {
		allowed, err := rl.allowRedis(ctx, key)
		if err == nil {
			return allowed
		}
		slog.Warn("Rate limiter falling back to in-process store", "error", err)
	}
	return rl.allowLocal(key)
}

// allowRedis counts attempts in a fixed Redis window. INCR plus first-write
// EXPIRE keeps the counter shared across instances.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	count, err := rl.redisClient.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.redisClient.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rl.maxAttempts), nil
}

// allowLocal counts attempts in the in-process window map.
func (rl *RateLimiter) allowLocal(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	entry, exists := rl.entries[key]
	if !exists {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	if now.After(entry.resetTime) {
		entry.attempts = 1
		entry.resetTime = now.Add(rl.windowDuration)
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}

	return false
}

// Cleanup removes expired entries from the in-process store. Call
// periodically to prevent unbounded growth when running without Redis.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
