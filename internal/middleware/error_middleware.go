package middleware

import (
	"errors"
	"net/http"

	"places-api/internal/transport/httpdto"
	places_errors "places-api/pkg/errors"
	"places-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const unknownErrorMessage = "An unknown error occurred!"

// ErrorHandler renders the last error attached with c.Error as
// {"message": ...}. The status comes from *HTTPError.Code, defaulting to 500.
// If the handler already wrote a response the error is only logged.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := http.StatusInternalServerError, unknownErrorMessage

		var httpErr *places_errors.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.StatusCode()
			if httpErr.Message != "" {
				message = httpErr.Message
			}
		}

		if l != nil {
			log := l.WithContext(c.Request.Context())
			if status >= http.StatusInternalServerError {
				log.Error("request failed", zap.Int("status", status), zap.Error(err))
			} else {
				log.Info("request rejected", zap.Int("status", status), zap.Error(err))
			}
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, httpdto.NewErrorResponse(message))
	}
}
