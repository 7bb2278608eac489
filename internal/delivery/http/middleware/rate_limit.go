package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the fixed-window limiter.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Atomic increment with TTL set on the first hit of each window.
// KEYS[1] = counter key, ARGV[1] = TTL seconds.
// Returns {count, ttl_remaining}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func startCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(window)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				rateLimitStore.Range(func(key, value any) bool {
					entry := value.(*rateLimitEntry)
					entry.mu.Lock()
					expired := now.After(entry.resetAt)
					entry.mu.Unlock()
					if expired {
						rateLimitStore.Delete(key)
					}
					return true
				})
			}
		}()
	})
}

// RateLimit limits requests per client IP. Redis is the shared counter when
// available; otherwise a per-process in-memory window takes over. The limiter
// fails open: a Redis error never rejects a request.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	startCleanup(cfg.Window)

	return func(c *gin.Context) {
		key := "rl:ip:" + c.ClientIP()

		var count int
		var retryAfter time.Duration

		if client := redis.Client(); client != nil {
			res, err := client.Eval(c.Request.Context(), rateLimitLuaScript, []string{key}, int(cfg.Window.Seconds())).Result()
			if err == nil {
				if vals, ok := res.([]interface{}); ok && len(vals) == 2 {
					n, _ := vals[0].(int64)
					ttl, _ := vals[1].(int64)
					count = int(n)
					retryAfter = time.Duration(ttl) * time.Second
				}
			} else {
				logger.Log.Warn("rate limiter redis error, falling back to memory", "error", err)
				count, retryAfter = memoryCount(key, cfg.Window)
			}
		} else {
			count, retryAfter = memoryCount(key, cfg.Window)
		}

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func memoryCount(key string, window time.Duration) (int, time.Duration) {
	now := time.Now()
	v, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := v.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, time.Until(entry.resetAt)
}
