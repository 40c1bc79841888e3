package handler

import (
	"fmt"
	"strings"

	"places-api/internal/validation"
	places_errors "places-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body into req. On failure it forwards a
// 422 to the error middleware and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		cause := fmt.Errorf("%w: %s", places_errors.ErrInvalidInput, strings.Join(validation.Describe(err), "; "))
		_ = c.Error(places_errors.ValidationError(cause))
		return false
	}
	return true
}
