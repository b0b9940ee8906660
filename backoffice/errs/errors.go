package errs

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type HTTPStatusError struct {
	StatusCode  int
	Message     string
	OriginalErr error
}

func (e *HTTPStatusError) Error() string {
	if e.OriginalErr == nil {
		return fmt.Sprintf("(status %d) %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(status %d) %s: %v", e.StatusCode, e.Message, e.OriginalErr)
}

func (e *HTTPStatusError) Unwrap() error {
	return e.OriginalErr
}

func NewHTTPStatusError(statusCode int, message string, originalErr error) *HTTPStatusError {
	return &HTTPStatusError{
		StatusCode:  statusCode,
		Message:     message,
		OriginalErr: originalErr,
	}
}

func BadRequest(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusBadRequest, message, err)
}

func Unauthorized(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusUnauthorized, message, err)
}

func Forbidden(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusForbidden, message, err)
}

func NotFound(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusNotFound, message, err)
}

func Conflict(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusConflict, message, err)
}

func Unprocessable(message string, err error) *HTTPStatusError {
	return NewHTTPStatusError(http.StatusUnprocessableEntity, message, err)
}

// IsHTTPStatusError finds an HTTPStatusError behind pkg/errors wrapping.
func IsHTTPStatusError(err error) (*HTTPStatusError, bool) {
	if err == nil {
		return nil, false
	}
	var httpErr *HTTPStatusError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	httpErr, ok := errors.Cause(err).(*HTTPStatusError)
	return httpErr, ok
}
