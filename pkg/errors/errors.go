package places_errors

import (
	"errors"
	"net/http"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrSaveFailed    = errors.New("save failed")
	ErrRateLimited   = errors.New("rate limited")
)

// HTTPError is the error signal handed to the error middleware. Code is the
// HTTP status to render; Err is the underlying cause and is only logged.
type HTTPError struct {
	Message string
	Code    int
	Err     error
}

func NewHTTPError(message string, code int) *HTTPError {
	return &HTTPError{Message: message, Code: code}
}

// Wrap attaches cause to a new HTTPError.
func Wrap(cause error, message string, code int) *HTTPError {
	return &HTTPError{Message: message, Code: code, Err: cause}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusCode returns Code, falling back to 500 when unset.
func (e *HTTPError) StatusCode() int {
	if e.Code == 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Taxonomy used by the handlers.

func ValidationError(cause error) *HTTPError {
	return Wrap(cause, "Invalid inputs passed, please check your data.", http.StatusUnprocessableEntity)
}

func NotFound(message string) *HTTPError {
	return NewHTTPError(message, http.StatusNotFound)
}

func Conflict(message string) *HTTPError {
	return NewHTTPError(message, http.StatusUnprocessableEntity)
}

func Unauthorized(message string) *HTTPError {
	return NewHTTPError(message, http.StatusUnauthorized)
}

func StoreFailure(cause error, message string) *HTTPError {
	return Wrap(cause, message, http.StatusInternalServerError)
}

func RouteNotFound() *HTTPError {
	return NewHTTPError("Could not find route.", http.StatusNotFound)
}

func TooManyRequests() *HTTPError {
	return Wrap(ErrRateLimited, "Too many requests, please try again later.", http.StatusTooManyRequests)
}
