//go:build unix

package shutdown

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
)

type fakeStoppable struct {
	calls atomic.Int32
}

func (f *fakeStoppable) Shutdown(ctx context.Context) error {
	f.calls.Add(1)
	return nil
}

func TestGracefulStopsOnSignal(t *testing.T) {
	target := &fakeStoppable{}
	done := Graceful([]os.Signal{syscall.SIGUSR1}, target, time.Second, logging.NewNop())

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("raise signal: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("shutdown did not complete")
	}

	if got := target.calls.Load(); got != 1 {
		t.Fatalf("expected one Shutdown call, got %d", got)
	}
}
