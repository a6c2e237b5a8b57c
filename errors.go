package tonapi

import (
	"errors"
	"fmt"

	"github.com/tonapi/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrBadRequest is returned when the server rejects the request (HTTP 400).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the API key is missing or invalid (HTTP 401).
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrNotFound is returned when the requested method does not exist (HTTP 404).
	ErrNotFound = errors.New("method does not exist")

	// ErrRateLimited is returned when the API rate limit is exceeded (HTTP 429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInternalServer is returned when the server encounters an internal error (HTTP 500).
	ErrInternalServer = errors.New("internal server error")
)

// APIError represents an HTTP error from the TON API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 400:
		return target == ErrBadRequest
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	case 500:
		return target == ErrInternalServer
	}
	return false
}

// ClientError reports whether the error originated on the client side.
func (e *APIError) ClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// ServerError reports whether the error originated on the server side.
func (e *APIError) ServerError() bool {
	return e.StatusCode >= 500
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TypeError represents a failure to map a JSON payload into a typed
// record, such as a missing required field or a mismatched field type.
type TypeError struct {
	Err error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type mismatch: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TypeError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors. This ensures
// that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var decErr *api.DecodeError
	if errors.As(err, &decErr) {
		return &TypeError{Err: decErr.Err}
	}

	return err
}
