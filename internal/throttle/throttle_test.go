package throttle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRoundTripper_Validation(t *testing.T) {
	if _, err := NewRoundTripper(0, 1, nil, nil); !errors.Is(err, ErrMustNotBeZero) {
		t.Errorf("rps=0: error = %v, want ErrMustNotBeZero", err)
	}
	if _, err := NewRoundTripper(1, 0, nil, nil); !errors.Is(err, ErrMustNotBeZero) {
		t.Errorf("burst=0: error = %v, want ErrMustNotBeZero", err)
	}
	if _, err := NewRoundTripper(1, 1, nil, nil); err != nil {
		t.Errorf("valid config: error = %v", err)
	}
}

func TestRoundTrip_PassesThrough(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	rt, err := NewRoundTripper(100, 10, nil, nil)
	if err != nil {
		t.Fatalf("NewRoundTripper() error = %v", err)
	}
	client := &http.Client{Transport: rt}

	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		resp.Body.Close()
	}

	if got := requests.Load(); got != 3 {
		t.Errorf("requests = %d, want 3", got)
	}
}

func TestRoundTrip_Paces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	// 10 rps with burst 1 means the third request waits two full tokens.
	rt, err := NewRoundTripper(10, 1, nil, nil)
	if err != nil {
		t.Fatalf("NewRoundTripper() error = %v", err)
	}
	client := &http.Client{Transport: rt}

	start := time.Now()
	for i := 0; i < 3; i++ {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		resp.Body.Close()
	}

	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("three requests at 10 rps took %v, want at least 150ms", elapsed)
	}
}

func TestRoundTrip_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	rt, err := NewRoundTripper(1, 1, nil, nil)
	if err != nil {
		t.Fatalf("NewRoundTripper() error = %v", err)
	}

	// Drain the only token so the next wait blocks.
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req, _ = http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if _, err := rt.RoundTrip(req); !errors.Is(err, ErrWaitingFailed) {
		t.Errorf("error = %v, want ErrWaitingFailed", err)
	}
}
