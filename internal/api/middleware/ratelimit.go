package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/domain"
)

// RateLimiter throttles requests per client IP with a token bucket each.
// Used on the auth endpoints to slow down credential stuffing and
// registration abuse.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows limit requests per second with the given burst.
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

// Middleware rejects requests over the per-IP budget with TooManyRequests.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return domain.NewError(domain.KindTooManyRequests, "too many requests, slow down")
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	limiter, ok := rl.visitors[ip]
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = limiter
	}
	rl.mu.Unlock()
	return limiter.Allow()
}
