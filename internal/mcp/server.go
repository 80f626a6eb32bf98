package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/sonarr-mcp/internal/config"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
)

const (
	rpcPath    = "/mcp"
	streamPath = "/mcp/stream"
	healthPath = "/health"

	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

// Server exposes the tool router over HTTP: the JSON-RPC endpoint, a
// streamable MCP endpoint for SDK clients, and a health check.
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	started atomic.Bool
}

// NewServer constructs a new MCP HTTP server
func NewServer(log *logging.Logger, cfg config.Config, router *Router) *Server {
	httpSrv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           NewHandler(log, router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		logger: log,
		config: cfg,
		srv:    httpSrv,
	}
}

// NewHandler assembles the routes and middleware chain
func NewHandler(log *logging.Logger, router *Router) http.Handler {
	if log == nil {
		log = logging.NewNop()
	}

	stream := newStreamServer(router, log.Named("stream"))
	streamHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return stream
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("POST "+rpcPath, NewDispatcher(router, log.Named("rpc")))
	mux.Handle(streamPath, streamHandler)
	mux.HandleFunc("GET "+healthPath, handleHealth)

	return withCORS(withRequestLog(log.Named("http"), mux))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(isoMillis),
	})
}

// newStreamServer mirrors the router into an SDK server so standard MCP
// clients see the same tools over the streamable transport.
func newStreamServer(router *Router, log *logging.Logger) *sdkmcp.Server {
	impl := &sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}

	s := sdkmcp.NewServer(impl, nil)
	for _, tool := range router.Tools() {
		s.AddTool(describe(tool), streamToolHandler(router, tool.Name(), log))
	}
	return s
}

func streamToolHandler(router *Router, name string, log *logging.Logger) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		var args []byte
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}

		outcome, err := router.Call(ctx, name, emptyIfNull(args))
		if err != nil {
			log.Warn("stream tool call failed", "tool", name, "err", err)
			res := textResult(ErrorMessage(err))
			res.IsError = true
			return res, nil
		}

		text, err := outcome.Text()
		if err != nil {
			return nil, err
		}
		return textResult(text), nil
	}
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("Sonarr MCP server listening", "addr", s.srv.Addr)
	s.logger.Info("MCP endpoints available",
		"rpc", rpcPath,
		"stream", streamPath,
		"health", healthPath,
	)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for MCP HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
