package ratelimit

import (
	"fmt"

	"github.com/rekarton-ge/client-crm/internal/apierrors"
	"github.com/rekarton-ge/client-crm/internal/httpkit"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per authenticated operator. It must run after
// the auth middleware; anonymous requests pass through. A Redis failure
// lets the request through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := httpkit.UserID(c)
		if userID == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result, err := s.Check(ctx, userID)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.TooManyRequests(c, "Rate limit exceeded")
			return
		}

		c.Next()
	}
}
