package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/config"
	"ai-task-assistant/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(mw.RequestID(), mw.Metrics(), mw.Logger())
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})...)
	return r
}

func get(r *gin.Engine, ip, requestID string) *httptest.ResponseRecorder {
	return getVia(r, ip, "", requestID)
}

func getVia(r *gin.Engine, ip, forwardedFor, requestID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	if requestID != "" {
		req.Header.Set(HeaderRequestID, requestID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newEngine(mw)

	w := get(r, "10.0.0.1", "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = get(r, "10.0.0.1", "")
	generated := w.Header().Get(HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 10, ClientTTL: time.Minute})
	r := newEngine(mw, mw.RateLimit())

	// Burst is 1 for 10 requests per minute.
	require.Equal(t, http.StatusOK, get(r, "10.0.0.1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.1", "").Code)

	// Other clients have their own bucket.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.2", "").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusOK, get(r, "10.0.0.1", "").Code)
	}
}

func TestRateLimit_IgnoresSpoofedForwardedFor(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 10, ClientTTL: time.Minute})
	r := newEngine(mw, mw.RateLimit())

	require.Equal(t, http.StatusOK, getVia(r, "10.0.0.1", "1.1.1.1", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, getVia(r, "10.0.0.1", "2.2.2.2", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, getVia(r, "10.0.0.1", "3.3.3.3", "").Code)
}

func TestRateLimit_TrustedProxyForwardsClient(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{RequestsPerMin: 10, ClientTTL: time.Minute})
	r := newEngine(mw, mw.RateLimit())
	require.NoError(t, r.SetTrustedProxies([]string{"10.0.0.0/8"}))

	// Two clients behind the same proxy get separate buckets.
	require.Equal(t, http.StatusOK, getVia(r, "10.0.0.1", "1.1.1.1", "").Code)
	assert.Equal(t, http.StatusOK, getVia(r, "10.0.0.1", "2.2.2.2", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, getVia(r, "10.0.0.1", "1.1.1.1", "").Code)
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10, 0, time.Minute) // burst 1

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("10.0.0.1") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}
