package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful waits for one of the signals, then stops s within timeout.
// The returned channel is closed once shutdown has finished so callers
// can wait for in-flight requests to drain before exiting.
func Graceful(signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) <-chan struct{} {
	done := make(chan struct{})
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)

	go func() {
		defer close(done)
		defer stop()

		<-sigCtx.Done()
		log.Info("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			log.Warn("graceful shutdown completed with error", "err", err)
		} else {
			log.Info("graceful shutdown completed successfully")
		}
	}()

	return done
}
