package tonapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()

	opts = append([]Option{
		WithBaseURL(url + "/"),
		WithRetryDelay(time.Millisecond),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)

	client, err := New("test-key", opts...)
	require.NoError(t, err)
	return client
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	require.NoError(t, err)
	assert.NotNil(t, client.api)
	assert.NotNil(t, client.logger)
}

func TestNetwork_BaseURL(t *testing.T) {
	assert.Equal(t, "https://tonapi.io/", Mainnet.baseURL())
	assert.Equal(t, "https://testnet.tonapi.io/", Testnet.baseURL())
	assert.Equal(t, "https://tonapi.io/", Network("").baseURL())
}

func TestClient_GetAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/accounts/EQBvW8Z5huBkMJYdnfAEM5JqTNkuWX3diqYENkWsIL0XggGG", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"address": "0:6f5bc679d13819a5cd5d094b05b3571cbfb87c43ab85e4a67948bf384fa1fe37",
			"balance": 1500000000,
			"last_activity": 1690000000,
			"status": "active",
			"get_methods": ["seqno"]
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	account, err := client.GetAccount(context.Background(), "EQBvW8Z5huBkMJYdnfAEM5JqTNkuWX3diqYENkWsIL0XggGG")
	require.NoError(t, err)
	assert.Equal(t, Balance(1500000000), account.Balance)
	assert.Equal(t, "active", account.Status)
	assert.InDelta(t, 1.5, account.Balance.ToTON(), 1e-9)
}

func TestClient_SentinelErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		sentinel   error
	}{
		{"bad request", 400, ErrBadRequest},
		{"unauthorized", 401, ErrUnauthorized},
		{"not found", 404, ErrNotFound},
		{"internal server", 500, ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error":"nope"}`))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			_, err := client.GetAccount(context.Background(), "EQB...")
			require.ErrorIs(t, err, tt.sentinel)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
		})
	}
}

func TestClient_RateLimitExhaustion(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithMaxRetries(3))

	_, err := client.GetAccount(context.Background(), "EQB...")
	require.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 3, requests)
}

func TestClient_TypeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance":"not a number"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetAccount(context.Background(), "EQB...")
	require.Error(t, err)

	var typeErr *TypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestClient_NetworkError(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")

	_, err := client.Status(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotEmpty(t, netErr.URL)
}

func TestClient_WithRateLimit(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"rest_online":true,"indexing_latency":0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, WithRateLimit(100, 10))

	for i := 0; i < 3; i++ {
		_, err := client.Status(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, requests)
}

func TestClient_WithRateLimit_Invalid(t *testing.T) {
	_, err := New("test-key", WithRateLimit(0, 1))
	require.Error(t, err)
}

func TestClient_WithHTTPClient(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"rest_online":true,"indexing_latency":0}`))
	}))
	defer server.Close()

	custom := &http.Client{Timeout: 5 * time.Second}
	client := newTestClient(t, server.URL, WithHTTPClient(custom))

	_, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Status(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.As(err, new(*NetworkError)))
}
