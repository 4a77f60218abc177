package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fyyur/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimiter creates a fixed-window rate limiting middleware keyed by
// client IP. Without a Redis client, or when Redis fails, requests pass.
func RateLimiter(redisClient *redis.Client, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || !cfg.RateLimitEnabled {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := zerolog.Ctx(ctx)
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn().Err(err).Msg("rate limiter unavailable, bypassing")
			c.Next()
			return
		}
		if count == 1 {
			// First request of the window
			if err := redisClient.Expire(ctx, key, cfg.RateLimitDuration).Err(); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("rate limiter failed to set expiry")
			}
		}

		limit := int64(cfg.RateLimitRequests)
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))

		if count > limit {
			ttl, _ := redisClient.TTL(ctx, key).Result()
			if ttl < 0 {
				ttl = cfg.RateLimitDuration
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": ttl.Seconds(),
			})
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limit-count, 10))
		c.Next()
	}
}
