package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	Code       int
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		Code:       statusCode,
		StatusCode: statusCode,
		Message:    message,
	}
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
