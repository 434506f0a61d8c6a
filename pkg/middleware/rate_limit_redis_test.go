package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/revisaai/revisaai/pkg/metrics"
	"github.com/stretchr/testify/require"
)

func redisLimitedRouter(t *testing.T, client *redis.Client, rps float64, burst int) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, rps, burst, time.Minute))
	r.GET("/motos", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func hit(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/motos", nil))
	return w
}

func TestRedisRateLimitMiddleware_WindowBudget(t *testing.T) {
	m := mr.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	rejected := testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("redis"))

	// a one minute window with no refill admits exactly the burst
	r := redisLimitedRouter(t, client, 0, 2)

	w := hit(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = hit(r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit(r)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "60", w.Header().Get("Retry-After"))
	require.Equal(t, rejected+1, testutil.ToFloat64(metrics.RateLimitRejected.WithLabelValues("redis")))

	// counters expire with their window
	m.FastForward(2 * time.Minute)
	require.Equal(t, http.StatusOK, hit(r).Code)
}

func TestRedisRateLimitMiddleware_KeysExpire(t *testing.T) {
	m := mr.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	r := redisLimitedRouter(t, client, 0, 5)

	require.Equal(t, http.StatusOK, hit(r).Code)
	keys := m.Keys()
	require.Len(t, keys, 1)
	require.Contains(t, keys[0], "rl:ip:")
	require.Greater(t, m.TTL(keys[0]), time.Duration(0))
}

func TestRedisRateLimitMiddleware_RedisDownUsesLocalBucket(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	r := redisLimitedRouter(t, client, 0.5, 1)
	m.Close()

	require.Equal(t, http.StatusOK, hit(r).Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	r := redisLimitedRouter(t, nil, 0.5, 1)

	require.Equal(t, http.StatusOK, hit(r).Code)
	require.Equal(t, http.StatusTooManyRequests, hit(r).Code)
}
