package api

import (
	"errors"
	"fmt"
)

// Fixed guidance messages mirrored from the upstream error contract.
const (
	unauthorizedMessage = "API key is missing or invalid. " +
		"You can get an access token here https://tonconsole.com/"
	notFoundMessage    = "Error 404: Method does not exist."
	rateLimitedMessage = "Too many requests per second. " +
		"Upgrade your plan on https://tonconsole.com/tonapi/pricing."
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrBadRequest indicates the server rejected the request (HTTP 400).
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates the API key is missing or invalid (HTTP 401).
	ErrUnauthorized = errors.New("invalid or missing API key")
	// ErrNotFound indicates the requested method does not exist (HTTP 404).
	ErrNotFound = errors.New("method does not exist")
	// ErrRateLimited indicates the rate limit has been exceeded (HTTP 429).
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrInternalServer indicates a server-side failure (HTTP 500).
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

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError represents a failure to map a JSON payload into a typed record.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
