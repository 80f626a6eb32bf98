package main

import (
	"log"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/sonarr-mcp/internal/config"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
	"github.com/honeycarbs/sonarr-mcp/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	router, err := InitializeRouter(cfg, logger)
	if err != nil {
		logger.Error("failed to wire MCP tools", "err", err)
		os.Exit(1)
	}

	srv := mcp.NewServer(logger, cfg, router)

	done := shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"sonarr", cfg.Sonarr.URL,
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	<-done
	logger.Info("MCP server stopped")
}
