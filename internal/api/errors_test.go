package api

import (
	"errors"
	"testing"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		statusCode int
		sentinel   error
	}{
		{400, ErrBadRequest},
		{401, ErrUnauthorized},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{500, ErrInternalServer},
	}

	for _, tt := range tests {
		err := &APIError{StatusCode: tt.statusCode}
		if !errors.Is(err, tt.sentinel) {
			t.Errorf("status %d: errors.Is(%v) = false", tt.statusCode, tt.sentinel)
		}
	}

	// Statuses outside the contract match no sentinel.
	err := &APIError{StatusCode: 418}
	for _, tt := range tests {
		if errors.Is(err, tt.sentinel) {
			t.Errorf("status 418 unexpectedly matches %v", tt.sentinel)
		}
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 400, Message: "invalid address"}
	if got := err.Error(); got != "API error 400: invalid address" {
		t.Errorf("Error() = %q", got)
	}

	err = &APIError{StatusCode: 502}
	if got := err.Error(); got != "API error 502" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAPIError_Classification(t *testing.T) {
	client := &APIError{StatusCode: 404}
	if !client.ClientError() || client.ServerError() {
		t.Error("404 should classify as a client error")
	}

	server := &APIError{StatusCode: 500}
	if server.ClientError() || !server.ServerError() {
		t.Error("500 should classify as a server error")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner, URL: "https://tonapi.io/v2/status"}

	if !errors.Is(err, inner) {
		t.Error("NetworkError should unwrap to the inner error")
	}
}

func TestDecodeError_Unwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("DecodeError should unwrap to the inner error")
	}
}
