package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows which HTTP status it maps to.
type HTTPError struct {
	Code       int    // application error code, sent as error_code
	StatusCode int    // HTTP status
	Message    string // user-facing message
}

// NewHTTPError returns an HTTPError whose application code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Code: status, StatusCode: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError unwraps err into an HTTPError when it carries one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
