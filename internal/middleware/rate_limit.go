package middleware

import (
	"context"
	"net/http"

	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Limiter decides whether a key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients over quota with 429. When the limiter itself
// fails the request is let through, so chat keeps answering without Redis.
func RateLimit(limiter Limiter, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			utils.LogWarn("Rate limiter unavailable, allowing request", map[string]interface{}{
				"error":      err.Error(),
				"request_id": c.GetString(utils.RequestIDKey),
			})
			c.Next()
			return
		}
		if !allowed {
			if m != nil {
				m.RateLimited.Inc()
			}
			utils.RespondWithError(c, utils.NewAPIError(http.StatusTooManyRequests, utils.ErrCodeTooManyRequests, "Too many requests, please slow down", ""))
			return
		}
		c.Next()
	}
}
