// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
	"github.com/glowup-wallet/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxRequests = 20
	defaultWindow      = time.Minute
)

// Rate limit response headers.
const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)

// window counts the requests of one client inside a fixed time window.
type window struct {
	used    int
	resetAt time.Time
}

// RateLimiter gives every client IP a budget of advice requests per fixed
// window. Each advice request costs one hosted model call.
type RateLimiter struct {
	mu          sync.Mutex
	windows     map[string]*window
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window and client.
// Non-positive values fall back to 20 requests per minute.
func NewRateLimiter(maxRequests int, per time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if per <= 0 {
		per = defaultWindow
	}
	return &RateLimiter{
		windows:     make(map[string]*window),
		maxRequests: maxRequests,
		window:      per,
		now:         time.Now,
	}
}

// Middleware rejects requests over budget with 429 and ADV-020002, and
// tells every client how much of its budget is left.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, retryAfter := rl.take(c.ClientIP())

		c.Header(HeaderRateLimitLimit, strconv.Itoa(rl.maxRequests))
		c.Header(HeaderRateLimitRemaining, strconv.Itoa(remaining))

		if !allowed {
			c.Header(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Take a breather and try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// take spends one request of the client's budget. It reports whether the
// request may proceed, what is left afterwards and, when refused, how long
// until the window resets.
func (rl *RateLimiter) take(client string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[client]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rl.window)}
		rl.windows[client] = w
	}

	if w.used >= rl.maxRequests {
		return false, 0, w.resetAt.Sub(now)
	}

	w.used++
	return true, rl.maxRequests - w.used, 0
}

// prune drops windows that have already reset.
func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for client, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, client)
		}
	}
}

// PruneEvery drops expired windows every interval until ctx is done.
func (rl *RateLimiter) PruneEvery(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.prune()
			}
		}
	}()
}
