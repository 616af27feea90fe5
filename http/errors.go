// Package http provides the retrying HTTP client used by remote
// configuration stores.
package http

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied is returned for 401 and 403 responses, such as a
	// missing or rejected ACL token.
	ErrAccessDenied = errors.New("access denied")

	// ErrBadRequest is returned for 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable is returned for 5xx responses.
	ErrUnavailable = errors.New("store unavailable")
)

// APIError is a non-2xx response from a remote store.
type APIError struct {
	// Service names the store, e.g. "consul".
	Service string

	StatusCode int

	// Endpoint is the requested path including its query.
	Endpoint string

	// Message is taken from the response body, or the status text.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: GET %s: %d: %s", e.Service, e.Endpoint, e.StatusCode, e.Message)
}

// Unwrap returns the sentinel for the status code, or nil when none applies.
func (e *APIError) Unwrap() error {
	return statusError(e.StatusCode)
}

func statusError(code int) error {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrAccessDenied
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		return ErrRateLimited
	case code >= 500:
		return ErrUnavailable
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the store.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAccessDenied reports whether the store rejected the credentials.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsTransient reports whether retrying the request may succeed.
func IsTransient(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable)
}
