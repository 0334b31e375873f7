package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterBurst(t *testing.T) {
	limiter := NewRateLimiter(1, 3)

	// The full burst is available immediately, then the bucket is dry.
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestIPRateLimiterIsolatesClients(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)

	assert.True(t, limiter.GetLimiter("10.0.0.1").Allow())
	assert.False(t, limiter.GetLimiter("10.0.0.1").Allow())

	// A different client has its own bucket.
	assert.True(t, limiter.GetLimiter("10.0.0.2").Allow())
}

func TestRateLimitMiddlewareRejectsWith429(t *testing.T) {
	m := NewRateLimitMiddleware(1, 1, 100, 100)

	called := 0
	next := func(w http.ResponseWriter, r *http.Request) { called++ }
	handle := m.Handle(next)

	r := httptest.NewRequest(http.MethodGet, "/activities", nil)

	w := httptest.NewRecorder()
	handle(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, called)

	// Global budget exhausted.
	w = httptest.NewRecorder()
	handle(w, r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, called)
}
