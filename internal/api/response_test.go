package api

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResult_Decode(t *testing.T) {
	result := &Result{JSON: json.RawMessage(`{"balance":1500000000}`)}

	var account struct {
		Balance int64 `json:"balance"`
	}
	if err := result.Decode(&account); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if account.Balance != 1500000000 {
		t.Errorf("balance = %d, want 1500000000", account.Balance)
	}
}

func TestResult_Decode_NonJSON(t *testing.T) {
	result := &Result{Text: "plain text", OK: true}

	var v map[string]any
	err := result.Decode(&v)

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
}

func TestResult_Decode_ShapeMismatch(t *testing.T) {
	result := &Result{JSON: json.RawMessage(`{"balance":"not a number"}`)}

	var account struct {
		Balance int64 `json:"balance"`
	}
	err := result.Decode(&account)

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
}

func TestResult_Bool(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{"JSON payload counts as success", Result{JSON: json.RawMessage(`{}`)}, true},
		{"non-JSON 200 placeholder", Result{Text: "ok", OK: true}, true},
		{"empty body placeholder", Result{OK: true}, true},
		{"unset placeholder", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Bool(); got != tt.want {
				t.Errorf("Bool() = %v, want %v", got, tt.want)
			}
		})
	}
}
