package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// countingTracer wraps the noop tracer and counts started spans.
type countingTracer struct {
	noop.Tracer
	started atomic.Int32
	lastOp  atomic.Value
}

func (t *countingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	t.started.Add(1)
	t.lastOp.Store(name)
	return t.Tracer.Start(ctx, name, opts...)
}

func TestClient_TracerRecordsOneSpanPerCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tracer := &countingTracer{}
	client := newTestClient(t, server.URL, WithTracer(tracer))

	if _, err := client.Get(context.Background(), "v2/status", nil, nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if _, err := client.Post(context.Background(), "v2/accounts/_bulk", map[string]any{}, nil); err != nil {
		t.Fatalf("Post() error = %v", err)
	}

	if got := tracer.started.Load(); got != 2 {
		t.Errorf("spans started = %d, want 2", got)
	}
	if got := tracer.lastOp.Load(); got != "tonapi.POST" {
		t.Errorf("last span name = %v, want tonapi.POST", got)
	}
}

func TestClient_TracerCoversEveryRetryLoop(t *testing.T) {
	// One span covers the whole retry loop, not each attempt.
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tracer := &countingTracer{}
	client := newTestClient(t, server.URL, WithTracer(tracer), WithMaxRetries(3))

	if _, err := client.Get(context.Background(), "v2/status", nil, nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got := requests.Load(); got != 2 {
		t.Errorf("requests = %d, want 2", got)
	}
	if got := tracer.started.Load(); got != 1 {
		t.Errorf("spans started = %d, want 1", got)
	}
}
