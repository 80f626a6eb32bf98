package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
)

func TestRouterRegisterTool(t *testing.T) {
	noop := func(context.Context, json.RawMessage) (Outcome, error) { return Value(nil), nil }

	router := NewRouter()
	if err := router.RegisterTool(newStub("first", noop)); err != nil {
		t.Fatalf("RegisterTool: %v", err)
	}

	tests := []struct {
		name string
		tool *stubTool
		want string
	}{
		{name: "duplicate", tool: newStub("first", noop), want: "already registered"},
		{name: "empty name", tool: newStub("", noop), want: "name is required"},
		{
			name: "non-object schema",
			tool: &stubTool{name: "bad", schema: &jsonschema.Schema{Type: "string"}, run: noop},
			want: "object schema",
		},
		{name: "nil schema", tool: &stubTool{name: "nil", run: noop}, want: "object schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := router.RegisterTool(tt.tool)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if len(router.Tools()) != 1 {
		t.Fatalf("rejected tools must not be registered")
	}
}

func TestRouterPreservesOrder(t *testing.T) {
	router := NewRouter()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := router.RegisterTool(newStub(name, nil)); err != nil {
			t.Fatalf("RegisterTool: %v", err)
		}
	}

	for i, tool := range router.List() {
		if tool.Name != names[i] {
			t.Fatalf("position %d: expected %s, got %s", i, names[i], tool.Name)
		}
	}
	for i, tool := range router.LegacyList() {
		if tool.Function.Name != names[i] {
			t.Fatalf("legacy position %d: expected %s, got %s", i, names[i], tool.Function.Name)
		}
	}
}

func TestRouterCall(t *testing.T) {
	router := NewRouter()
	_ = router.RegisterTool(newStub("count", func(_ context.Context, args json.RawMessage) (Outcome, error) {
		return Value(len(args)), nil
	}))

	out, err := router.Call(context.Background(), "count", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if out.Payload() != 2 {
		t.Fatalf("unexpected payload %v", out.Payload())
	}

	if _, err := router.Call(context.Background(), "absent", nil); err == nil {
		t.Fatalf("expected unknown tool error")
	}
}

func TestOutcomeText(t *testing.T) {
	tests := []struct {
		name string
		out  Outcome
		want string
	}{
		{name: "soft failure", out: SoftFailure("No series found."), want: "No series found."},
		{name: "string value", out: Value("plain"), want: "plain"},
		{name: "empty list", out: Value([]int{}), want: "[]"},
		{name: "no html escaping", out: Value(map[string]string{"t": "Law & Order <SVU>"}), want: "{\n  \"t\": \"Law & Order <SVU>\"\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.out.Text()
			if err != nil {
				t.Fatalf("Text: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := Value(make(chan int)).Text(); err == nil {
		t.Fatalf("expected encode error for unsupported value")
	}
}
