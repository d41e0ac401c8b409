package middleware

import (
	"github.com/labstack/echo/v4"

	"dorakingdom/internal/infrastructure/ratelimit"
	"dorakingdom/pkg/errors"
	"dorakingdom/pkg/logger"
	"dorakingdom/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit guards an action with the caller's per-user token bucket. Must run
// after Authenticate; anonymous callers fall back to their IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, _ := c.Get("uid").(string)
			if key == "" {
				key = c.RealIP()
			}

			allowed, wait := m.limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit hit for %s on %s (retry in %v)", key, action, wait)
				return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
			}

			return next(c)
		}
	}
}
