package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedRouter(t *testing.T, max int, allow AllowFunc) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP())
	r.POST("/auth/login", RateLimit(rdb, max, time.Minute, KeyByIPAndPath(), allow), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, mr
}

func hit(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBudget(t *testing.T) {
	r, mr := limitedRouter(t, 2, nil)

	w := hit(r, "203.0.113.9")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Reset"))

	w = hit(r, "203.0.113.9")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = hit(r, "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// other clients keep their own budget
	assert.Equal(t, http.StatusNoContent, hit(r, "198.51.100.20").Code)

	// the window expires with the key
	key := "rl:path:/auth/login:ip:203.0.113.9"
	require.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusNoContent, hit(r, "203.0.113.9").Code)
}

func TestRateLimitAllowBypass(t *testing.T) {
	r, mr := limitedRouter(t, 1, AllowPrivateIP())

	for i := 0; i < 3; i++ {
		w := hit(r, "10.0.0.7")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
	assert.False(t, mr.Exists("rl:path:/auth/login:ip:10.0.0.7"))
}

func TestRateLimitFailsOpen(t *testing.T) {
	r, mr := limitedRouter(t, 1, nil)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, hit(r, "203.0.113.9").Code)
	}
}
