package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Default transport settings.
const (
	DefaultBaseURL    = "https://tonapi.io/"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Client is the HTTP transport core. It owns base URL selection, default
// headers, request dispatch, response interpretation and the rate-limit
// retry loop. It holds no mutable per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. The URL must end with a slash;
// request paths are relative.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMaxRetries sets the total number of attempts for rate-limited calls.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the pause between rate-limited attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTracer sets the tracer used to record one span per API call.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// New creates a new API client. It performs no I/O.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default(),
		tracer:     noop.NewTracerProvider().Tracer("tonapi"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Get sends a GET request and interprets the response.
func (c *Client) Get(ctx context.Context, path string, query url.Values, headers http.Header) (*Result, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, headers)
}

// Post sends a POST request with a JSON body and interprets the response.
func (c *Client) Post(ctx context.Context, path string, body any, headers http.Header) (*Result, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, headers)
}

// do drives the bounded retry loop. Only rate-limited responses are
// retried; every other outcome terminates the loop immediately.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, headers http.Header) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "tonapi."+method, trace.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	))
	defer span.End()

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		result, err := c.once(ctx, method, path, query, payload, headers)
		if err == nil {
			span.SetAttributes(attribute.Int("tonapi.attempts", attempt))
			return result, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		c.logger.Warn("rate limit exceeded, retrying",
			"attempt", attempt,
			"max_retries", c.maxRetries,
		)
		if attempt < c.maxRetries {
			if err := c.wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	err := &APIError{StatusCode: http.StatusTooManyRequests, Message: rateLimitedMessage}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return nil, err
}

// once issues a single HTTP request. Caller-supplied headers take
// precedence; the default Authorization, Accept and Content-Type headers
// only fill the gaps.
func (c *Client) once(ctx context.Context, method, path string, query url.Values, payload []byte, headers http.Header) (*Result, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: req.URL.String()}
	}
	defer resp.Body.Close()

	return interpret(resp)
}

// interpret maps one HTTP response to a Result or an APIError.
//
// Status mapping takes precedence over the non-JSON fallback: a non-JSON
// body on an error status changes only the message, never the error kind.
// The boolean placeholder is therefore reachable for 200 responses alone.
func interpret(resp *http.Response) (*Result, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: resp.Request.URL.String()}
	}

	var decoded any
	isJSON := len(bytes.TrimSpace(body)) > 0 && json.Unmarshal(body, &decoded) == nil

	errText := string(bytes.TrimSpace(body))
	if isJSON {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			errText = e.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if !isJSON {
			return &Result{Text: string(body), OK: true}, nil
		}
		return &Result{JSON: json.RawMessage(body)}, nil
	case http.StatusUnauthorized:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: unauthorizedMessage}
	case http.StatusNotFound:
		return nil, &APIError{StatusCode: resp.StatusCode, Message: notFoundMessage}
	case http.StatusTooManyRequests:
		if errText == "" {
			errText = rateLimitedMessage
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errText}
	default:
		// 400, 500 and every other unexpected status carry the
		// server-supplied error text.
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errText}
	}
}

// wait pauses for the retry delay, honoring context cancellation.
func (c *Client) wait(ctx context.Context) error {
	timer := time.NewTimer(c.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
