// Package validation configures the validator engine behind gin's binding
// and turns its errors into loggable field summaries.
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var registerOnce sync.Once

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Register installs the custom rules on gin's default validator. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// whitespace-only strings are not "non-empty"
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		// max counts runes; bcrypt counts bytes
		_ = v.RegisterValidation("bcryptmax", bcryptMax)
	})
}

func bcryptMax(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= MaxPasswordBytes
}

// Describe lists failed fields as "Field: tag" pairs. Errors that are not
// validation errors (malformed JSON, wrong types) are returned as-is.
func Describe(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			out = append(out, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return out
}
