package tonapi

import (
	"context"
	"fmt"
	"net/url"
)

// TraceID references one trace by its root transaction.
type TraceID struct {
	ID    string `json:"id"`
	Utime int64  `json:"utime"`
}

// TraceIDs is a list of trace references.
type TraceIDs struct {
	Traces []TraceID `json:"traces"`
}

// Trace is a causal tree of transactions originating from one inbound
// message.
type Trace struct {
	Transaction Transaction `json:"transaction"`
	Interfaces  []string    `json:"interfaces"`
	Children    []Trace     `json:"children,omitempty"`
	Emulated    bool        `json:"emulated,omitempty"`
}

// GetTrace returns the full transaction tree of a trace.
func (c *Client) GetTrace(ctx context.Context, traceID string) (*Trace, error) {
	path := fmt.Sprintf("v2/traces/%s", url.PathEscape(traceID))

	var result Trace
	if err := c.getJSON(ctx, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
