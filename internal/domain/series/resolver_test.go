package series

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

type fakeLister struct {
	series []sonarr.Series
	err    error
	calls  int
}

func (f *fakeLister) ListSeries(context.Context) ([]sonarr.Series, error) {
	f.calls++
	return f.series, f.err
}

func intPtr(v int) *int { return &v }

func TestResolve(t *testing.T) {
	library := []sonarr.Series{
		{ID: 1, Title: "Breaking Bad"},
		{ID: 2, Title: "The FOO Show"},
		{ID: 3, Title: "Foo Fighters Live"},
	}

	tests := []struct {
		name      string
		ref       Ref
		wantID    int
		wantFail  string
		wantCalls int
	}{
		{name: "title substring case-insensitive", ref: Ref{Title: "foo"}, wantID: 2, wantCalls: 1},
		{name: "first match wins", ref: Ref{Title: "FOO"}, wantID: 2, wantCalls: 1},
		{name: "no match", ref: Ref{Title: "Lost"}, wantFail: `No series found matching title: "Lost"`, wantCalls: 1},
		{name: "nothing supplied", ref: Ref{}, wantFail: MissingRefMessage},
		{name: "id wins over title", ref: Ref{ID: intPtr(42), Title: "foo"}, wantID: 42},
		{name: "id not validated", ref: Ref{ID: intPtr(999)}, wantID: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := &fakeLister{series: library}
			res, err := NewResolver(lister).Resolve(context.Background(), tt.ref)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			if tt.wantFail != "" {
				if res.Resolved() || res.Failure != tt.wantFail {
					t.Fatalf("expected failure %q, got %+v", tt.wantFail, res)
				}
			} else if !res.Resolved() || res.ID != tt.wantID {
				t.Fatalf("expected id %d, got %+v", tt.wantID, res)
			}

			if lister.calls != tt.wantCalls {
				t.Fatalf("expected %d list calls, got %d", tt.wantCalls, lister.calls)
			}
		})
	}
}

func TestResolveListFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection refused")}
	_, err := NewResolver(lister).Resolve(context.Background(), Ref{Title: "foo"})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected wrapped list error, got %v", err)
	}
}
