package middleware

import (
	"net/http"
	"strconv"

	"places-api/internal/metrics"
	"places-api/internal/ratelimit"
	places_errors "places-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AuthRateLimitMiddleware limits signup/login attempts per client IP. It is
// attached to those routes only. A limiter failure is a 500, not a pass.
func AuthRateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			_ = c.Error(places_errors.Wrap(err, "Something went wrong, please try again later.", http.StatusInternalServerError))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			metrics.RateLimitRejections.Inc()
			_ = c.Error(places_errors.TooManyRequests())
			c.Abort()
			return
		}

		c.Next()
	}
}

// setRateLimitHeaders sets standard rate limit response headers
func setRateLimitHeaders(c *gin.Context, result *ratelimit.Result) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(int64(result.ResetIn.Seconds()), 10))
}
