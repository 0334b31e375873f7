package middleware

import (
	"net/http"
	"sync"
	"time"

	"mergington-hub/common/response"
)

// RateLimiter is a token-bucket limiter: allows bursts, refills at a fixed
// rate.
type RateLimiter struct {
	rate       float64   // tokens added per second
	burst      int       // bucket capacity
	tokens     float64   // current tokens
	lastUpdate time.Time // last refill
	mu         sync.Mutex
}

// NewRateLimiter creates a limiter allowing rate requests per second with
// the given burst capacity.
func NewRateLimiter(rate float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:       rate,
		burst:      burst,
		tokens:     float64(burst),
		lastUpdate: time.Now(),
	}
}

// Allow reports whether one more request fits the budget.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.lastUpdate).Seconds()
	r.lastUpdate = now

	r.tokens += elapsed * r.rate
	if r.tokens > float64(r.burst) {
		r.tokens = float64(r.burst)
	}

	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// IPRateLimiter keeps one limiter per client IP.
type IPRateLimiter struct {
	limiters map[string]*RateLimiter
	mu       sync.RWMutex
	rate     float64
	burst    int
}

// NewIPRateLimiter creates a per-IP limiter factory.
func NewIPRateLimiter(rate float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: make(map[string]*RateLimiter),
		rate:     rate,
		burst:    burst,
	}
}

// GetLimiter returns the limiter for ip, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *RateLimiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()

	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check under the write lock.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	limiter = NewRateLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter
	return limiter
}

// RateLimitMiddleware applies a global limit first, then a per-IP limit.
type RateLimitMiddleware struct {
	ipLimiter     *IPRateLimiter
	globalLimiter *RateLimiter
}

// NewRateLimitMiddleware creates the rate-limit middleware.
func NewRateLimitMiddleware(globalRate float64, globalBurst int, ipRate float64, ipBurst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		ipLimiter:     NewIPRateLimiter(ipRate, ipBurst),
		globalLimiter: NewRateLimiter(globalRate, globalBurst),
	}
}

// Handle rejects over-budget requests with 429.
func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.globalLimiter.Allow() {
			response.Error(w, http.StatusTooManyRequests, "service is busy, please retry later")
			return
		}

		ip := getClientIP(r)
		if !m.ipLimiter.GetLimiter(ip).Allow() {
			response.Error(w, http.StatusTooManyRequests, "too many requests, please slow down")
			return
		}

		next(w, r)
	}
}

// getClientIP resolves the client address, preferring proxy headers.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
