package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/revisaai/revisaai/pkg/logger"
	"github.com/revisaai/revisaai/pkg/metrics"
)

// RedisRateLimitMiddleware counts requests per key in fixed windows shared by
// every API instance. A window admits rps*window+burst requests.
// When Redis cannot be reached the request is judged by a local token bucket instead.
func RedisRateLimitMiddleware(client *redis.Client, rps float64, burst int, window time.Duration) gin.HandlerFunc {
	local := RateLimitMiddleware(rps, burst)
	if client == nil {
		return local
	}
	win := int64(window / time.Second)
	if win <= 0 {
		win = 1
	}
	limit := int64(rps*float64(win)) + int64(burst)
	ttl := time.Duration(win+1) * time.Second

	return func(c *gin.Context) {
		key := "rl:" + rateKey(c) + ":" + strconv.FormatInt(time.Now().Unix()/win, 10)

		var incr *redis.IntCmd
		_, err := client.TxPipelined(c.Request.Context(), func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(c.Request.Context(), key)
			pipe.Expire(c.Request.Context(), key, ttl)
			return nil
		})
		if err != nil {
			logger.Warnf("rate limit: redis unavailable, using local limiter: %v", err)
			local(c)
			return
		}

		used := incr.Val()
		if used > limit {
			c.Header("Retry-After", strconv.FormatInt(win, 10))
			c.Header("X-RateLimit-Remaining", "0")
			metrics.RateLimitRejected.WithLabelValues("redis").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limit-used, 10))
		metrics.RateLimitAllowed.WithLabelValues("redis").Inc()
		c.Next()
	}
}
