package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
)

const maxRequestBody = 4 << 20

type methodKind int

const (
	methodInvalid methodKind = iota
	methodDiscover
	methodInitialize
	methodToolsList
	methodToolsCall
	methodInitialized
	methodDirect
)

var knownMethods = map[string]methodKind{
	"mcp.discover":              methodDiscover,
	"initialize":                methodInitialize,
	"tools/list":                methodToolsList,
	"tools/call":                methodToolsCall,
	"notifications/initialized": methodInitialized,
}

func classify(req RPCRequest) methodKind {
	if req.JSONRPC != jsonRPCVersion || req.Method == "" {
		return methodInvalid
	}
	if kind, ok := knownMethods[req.Method]; ok {
		return kind
	}
	return methodDirect
}

// Dispatcher routes JSON-RPC requests to the tool router
type Dispatcher struct {
	router *Router
	logger *logging.Logger
}

// NewDispatcher builds a dispatcher over a populated router
func NewDispatcher(router *Router, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{router: router, logger: logger}
}

// Handle answers exactly one response for one request, together with the
// HTTP status the transport should use.
func (d *Dispatcher) Handle(ctx context.Context, req RPCRequest) (resp RPCResponse, status int) {
	kind := classify(req)
	if kind == methodInvalid {
		return errorResponse(req.ID, errInvalidRequest), http.StatusBadRequest
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic while processing method", "method", req.Method, "panic", r)
			resp = errorResponse(req.ID, &RPCError{Code: ErrorInternal, Message: "Internal error"})
			status = http.StatusInternalServerError
		}
	}()

	result, err := d.dispatch(ctx, kind, req)
	if err != nil {
		rpcErr := toRPCError(err)
		d.logger.Error("error processing method",
			"method", req.Method,
			"code", rpcErr.Code,
			"err", err,
		)
		return errorResponse(req.ID, rpcErr), http.StatusInternalServerError
	}

	return RPCResponse{JSONRPC: jsonRPCVersion, Result: result, ID: req.ID}, http.StatusOK
}

func (d *Dispatcher) dispatch(ctx context.Context, kind methodKind, req RPCRequest) (any, error) {
	switch kind {
	case methodDiscover:
		return ListToolsResult{Tools: d.router.LegacyList()}, nil
	case methodInitialize:
		return initializeResult(), nil
	case methodToolsList:
		return ListToolsResult{Tools: d.router.List()}, nil
	case methodToolsCall:
		return d.callTool(ctx, req.Params)
	case methodInitialized:
		return map[string]any{}, nil
	case methodDirect:
		return d.callDirect(ctx, req.Method, req.Params)
	default:
		return nil, fmt.Errorf("unhandled method kind %d", kind)
	}
}

func (d *Dispatcher) callTool(ctx context.Context, raw json.RawMessage) (any, error) {
	if isNull(raw) {
		return nil, NewInvalidParamsError("Invalid params: tools/call requires name and arguments")
	}

	var params CallToolParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, NewInvalidParamsError("Invalid params: %v", err)
	}

	tool, ok := d.router.Lookup(params.Name)
	if !ok {
		return nil, errToolNotFound
	}

	d.logger.Debug("tools/call", "tool", params.Name)

	outcome, err := tool.Execute(ctx, emptyIfNull(params.Arguments))
	if err != nil {
		return nil, err
	}

	text, err := outcome.Text()
	if err != nil {
		return nil, err
	}

	return textResult(text), nil
}

func (d *Dispatcher) callDirect(ctx context.Context, method string, params json.RawMessage) (any, error) {
	tool, ok := d.router.Lookup(method)
	if !ok {
		return nil, errMethodNotFound
	}

	d.logger.Debug("direct tool call", "tool", method)

	outcome, err := tool.Execute(ctx, emptyIfNull(params))
	if err != nil {
		return nil, err
	}

	return outcome.Payload(), nil
}

// ServeHTTP implements the single JSON-RPC POST endpoint.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(nil, errParse))
		return
	}

	req, rpcErr := decodeRequest(body)
	if rpcErr != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(req.ID, rpcErr))
		return
	}

	resp, status := d.Handle(r.Context(), req)
	writeJSON(w, status, resp)
}

func decodeRequest(body []byte) (RPCRequest, *RPCError) {
	if !json.Valid(body) {
		return RPCRequest{}, errParse
	}

	var wire wireRequest
	if err := json.Unmarshal(body, &wire); err != nil {
		// valid JSON that is not an object, e.g. a batch array
		return RPCRequest{}, errInvalidRequest
	}

	req := RPCRequest{ID: wire.ID, Params: wire.Params}
	req.JSONRPC, _ = wire.JSONRPC.(string)
	req.Method, _ = wire.Method.(string)
	return req, nil
}

func errorResponse(id json.RawMessage, rpcErr *RPCError) RPCResponse {
	return RPCResponse{
		JSONRPC: jsonRPCVersion,
		Error:   rpcErr,
		ID:      id,
	}
}

// textResult returns a text-only tool result
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func emptyIfNull(raw json.RawMessage) json.RawMessage {
	if isNull(raw) {
		return json.RawMessage("{}")
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
