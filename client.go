package tonapi

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tonapi/client-go/internal/api"
	"github.com/tonapi/client-go/internal/throttle"
)

// Client is the TON API client. It is configured once at construction and
// holds no mutable state, so a single instance can serve concurrent calls.
type Client struct {
	api    *api.Client
	logger *slog.Logger
}

// New creates a new TON API client with the given API key. It performs no
// I/O; the first network activity happens on the first method call.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		network: Mainnet,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:    apiClient,
		logger: cfg.logger,
	}, nil
}

// buildAPIClient creates and configures a transport core from the config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	baseURL := cfg.network.baseURL()
	if cfg.baseURL != "" {
		baseURL = cfg.baseURL
	}

	apiOpts := []api.Option{
		api.WithBaseURL(baseURL),
		api.WithLogger(cfg.logger),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.maxRetries > 0 {
		apiOpts = append(apiOpts, api.WithMaxRetries(cfg.maxRetries))
	}
	if cfg.retryDelay > 0 {
		apiOpts = append(apiOpts, api.WithRetryDelay(cfg.retryDelay))
	}
	if cfg.tracer != nil {
		apiOpts = append(apiOpts, api.WithTracer(cfg.tracer))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	httpClient, err := buildHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		apiClient.SetHTTPClient(httpClient)
	}

	return apiClient, nil
}

// buildHTTPClient composes the custom HTTP client, insecure-TLS transport
// and throttle round-tripper. Returns nil when the defaults suffice.
func buildHTTPClient(cfg *clientConfig) (*http.Client, error) {
	if cfg.httpClient == nil && !cfg.insecureTLS && cfg.throttle == nil {
		return nil, nil
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		timeout := cfg.timeout
		if timeout == 0 {
			timeout = api.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	transport := httpClient.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.insecureTLS {
		transport = insecureTransport(transport)
	}
	if cfg.throttle != nil {
		logger := cfg.logger
		rt, err := throttle.NewRoundTripper(
			cfg.throttle.RPS, cfg.throttle.Burst,
			func() *slog.Logger { return logger },
			transport,
		)
		if err != nil {
			return nil, err
		}
		transport = rt
	}
	httpClient.Transport = transport

	return httpClient, nil
}

// insecureTransport clones base with TLS certificate verification off.
func insecureTransport(base http.RoundTripper) http.RoundTripper {
	t, ok := base.(*http.Transport)
	if !ok {
		t = http.DefaultTransport.(*http.Transport)
	}
	t = t.Clone()
	if t.TLSClientConfig == nil {
		t.TLSClientConfig = &tls.Config{}
	}
	t.TLSClientConfig.InsecureSkipVerify = true
	return t
}

// getJSON issues a GET request and decodes the payload into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, headers http.Header, v any) error {
	result, err := c.api.Get(ctx, path, query, headers)
	if err != nil {
		return wrapError(err)
	}
	return wrapError(result.Decode(v))
}

// postJSON issues a POST request and decodes the payload into v.
func (c *Client) postJSON(ctx context.Context, path string, body any, v any) error {
	result, err := c.api.Post(ctx, path, body, nil)
	if err != nil {
		return wrapError(err)
	}
	if v == nil {
		return nil
	}
	return wrapError(result.Decode(v))
}
