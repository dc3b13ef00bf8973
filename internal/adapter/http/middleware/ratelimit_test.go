package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"game-economy/internal/adapter/http/middleware"
	redisStore "game-economy/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func withHost(host string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if host != "" {
			c.Set(middleware.CtxHostID, host)
		}
		c.Next()
	}
}

func setupRateLimitRouter(limiter gin.HandlerFunc, host string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/test", withHost(host), limiter, func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	rule := middleware.RateLimitRule{Limit: 3, Window: time.Hour}
	router := setupRateLimitRouter(middleware.RateLimiter(newStore(t), rule, zerolog.Nop()), "host-a")

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rule := middleware.RateLimitRule{Limit: 2, Window: time.Hour}
	router := setupRateLimitRouter(middleware.RateLimiter(newStore(t), rule, zerolog.Nop()), "host-a")

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "RATE_001")
}

func TestRateLimiter_HostsAreSeparate(t *testing.T) {
	store := newStore(t)
	rule := middleware.RateLimitRule{Limit: 1, Window: time.Hour}
	a := setupRateLimitRouter(middleware.RateLimiter(store, rule, zerolog.Nop()), "host-a")
	b := setupRateLimitRouter(middleware.RateLimiter(store, rule, zerolog.Nop()), "host-b")

	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	b.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, 200, w.Code)
}

func TestRateLimiter_DegradedWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()
	mr.Close()

	rule := middleware.RateLimitRule{Limit: 1, Window: time.Minute}
	router := setupRateLimitRouter(middleware.RateLimiter(redisStore.NewRateLimitStore(client), rule, zerolog.Nop()), "host-a")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, 200, w.Code)
}

func TestLocalRateLimiter_BlocksOverBurst(t *testing.T) {
	limiter := middleware.NewHostLimiter(60, 2, time.Minute)
	router := setupRateLimitRouter(middleware.LocalRateLimiter(limiter), "host-a")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, limiter.Len())
}

func TestHostLimiter_RefillsAndEvicts(t *testing.T) {
	limiter := middleware.NewHostLimiter(60, 1, time.Second)
	now := time.Now()

	assert.True(t, limiter.Allow("a", now))
	assert.False(t, limiter.Allow("a", now))
	assert.True(t, limiter.Allow("a", now.Add(time.Second)), "one token per second")

	// Idle keys are swept every 512 calls.
	later := now.Add(time.Hour)
	for i := 0; i < 511; i++ {
		limiter.Allow("b", later)
	}
	assert.Equal(t, 1, limiter.Len())
}
