package api

import (
	"encoding/json"
	"fmt"
)

// Result is the interpreted body of a successful API call. Responses
// normally carry JSON; a handful of endpoints answer with an empty or
// plain-text body, for which the raw text and a boolean placeholder are
// kept instead.
type Result struct {
	// JSON is the decoded payload. Nil when the body was not JSON.
	JSON json.RawMessage
	// Text is the raw body when it was not JSON.
	Text string
	// OK is the placeholder payload for non-JSON bodies: true iff the
	// status was 200.
	OK bool
}

// Decode unmarshals the JSON payload into v. It fails with a DecodeError
// when the body was not JSON or does not match the record shape.
func (r *Result) Decode(v any) error {
	if r.JSON == nil {
		return &DecodeError{Err: fmt.Errorf("response body is not JSON: %q", r.Text)}
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Bool reports the payload of endpoints without a typed body. A JSON
// payload counts as success; otherwise the status placeholder is used.
func (r *Result) Bool() bool {
	if r.JSON != nil {
		return true
	}
	return r.OK
}
