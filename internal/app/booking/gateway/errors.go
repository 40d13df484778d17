package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMalformedResponse marks a 2xx response whose body could not be decoded.
// Such responses are not retried.
var ErrMalformedResponse = errors.New("malformed response body")

// APIError is a non-2xx response from the school API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("school api: status %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUpstream reports whether err came from talking to the school API
// (transport failure or an error response) rather than from this service.
func IsUpstream(err error) bool {
	var apiErr *APIError
	var reqErr *RequestError
	return errors.As(err, &apiErr) || errors.As(err, &reqErr)
}

// RequestError wraps a failure to reach the API or decode its response.
type RequestError struct {
	Method string
	Path   string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("school api: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
