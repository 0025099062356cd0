package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window; <= 0 disables the limiter
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
	// Redis counters are shared across instances; nil uses in-memory counters
	Redis *goredis.Client
	// Called before a request is rejected with 429
	OnLimited func(*gin.Context)
	// Clock, for tests
	Now func() time.Time
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// ContactRateLimitConfig limits contact submissions per client IP.
// Fails open: a Redis outage must not take the contact form down.
func ContactRateLimitConfig(limit int, window time.Duration, client *goredis.Client) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:contact:",
		FailClosed: false,
		Redis:      client,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// memoryStore is the per-middleware fallback counter set.
type memoryStore struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
}

func (s *memoryStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Drop expired entries at most once per window
	if now.After(s.nextSweep) {
		for k, e := range s.entries {
			if now.After(e.resetAt) {
				delete(s.entries, k)
			}
		}
		s.nextSweep = now.Add(window)
	}

	entry, ok := s.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt
}

// RateLimitMiddleware creates a rate limiting middleware with the given config
// Uses Redis when configured, falls back to in-memory when not
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	store := &memoryStore{entries: make(map[string]*rateLimitEntry)}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := config.Now()

		var count int
		var resetAt time.Time

		if config.Redis != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), config.Redis, fullKey, config, now)
			if err != nil {
				logger.Log.Warn("rate limit redis error",
					"request_id", c.GetString(string(domain.KeyRequestID)),
					"error", err,
				)
				if config.FailClosed {
					_ = c.Error(apperror.New(http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", err))
					c.Abort()
					return
				}
				count, resetAt = store.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = store.hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			if config.OnLimited != nil {
				config.OnLimited(c)
			}

			_ = c.Error(apperror.TooManyRequests(domain.MsgTooManyRequests))
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig, now time.Time) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	// Parse result [count, ttl]
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), now.Add(time.Duration(ttl) * time.Second), nil
}
