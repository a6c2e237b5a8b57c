package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

var (
	// ErrMustNotBeZero is returned when RPS or burst is not positive.
	ErrMustNotBeZero = errors.New("must be greater than zero")
	// ErrWaitingFailed is returned when the limiter wait fails.
	ErrWaitingFailed = errors.New("limiter waiting failed")
)

// Config defines the throttler's requests per second and burst capacity.
type Config struct {
	RPS   int
	Burst int
}

// throttle is an http.RoundTripper, using the time/rate token bucket
// limiter to restrict outbound calls.
type throttle struct {
	limiter *rate.Limiter
	rps     int
	burst   int
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper wraps next with a token-bucket limiter. Requests block
// until a token becomes available or the request context is cancelled.
func NewRoundTripper(rps, burst int, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 {
		return nil, fmt.Errorf("rps: %w", ErrMustNotBeZero)
	}
	if burst <= 0 {
		return nil, fmt.Errorf("burst: %w", ErrMustNotBeZero)
	}
	if next == nil {
		next = http.DefaultTransport
	}
	if logFn == nil {
		logFn = slog.Default
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
		next:    next,
		logFn:   logFn,
	}, nil
}

// RoundTrip implements http.RoundTripper.
func (t *throttle) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		t.logFn().Debug("throttle wait interrupted",
			"url", req.URL.String(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrWaitingFailed, err)
	}

	return t.next.RoundTrip(req)
}
