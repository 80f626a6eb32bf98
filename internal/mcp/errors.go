package mcp

import (
	"errors"
	"fmt"
)

// JSON-RPC error codes
const (
	ErrorParse          = -32700
	ErrorInvalidRequest = -32600
	ErrorMethodNotFound = -32601
	ErrorInvalidParams  = -32602
	ErrorInternal       = -32603
)

// RPCError conveys JSON-RPC error information
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"` // optional extra info
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// NewInvalidParamsError reports arguments a tool could not accept
func NewInvalidParamsError(format string, args ...any) error {
	return &RPCError{Code: ErrorInvalidParams, Message: fmt.Sprintf(format, args...)}
}

var (
	errInvalidRequest = &RPCError{Code: ErrorInvalidRequest, Message: "Invalid Request"}
	errParse          = &RPCError{Code: ErrorParse, Message: "Parse error"}
	errToolNotFound   = &RPCError{Code: ErrorMethodNotFound, Message: "Tool not found"}
	errMethodNotFound = &RPCError{Code: ErrorMethodNotFound, Message: "Method not found"}
)

// upstreamError is implemented by backend errors that carry the
// message the remote service put in its response body.
type upstreamError interface {
	error
	UpstreamMessage() string
}

// ErrorMessage returns the most specific description available for err:
// an upstream service message first, then the error text itself.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var upstream upstreamError
	if errors.As(err, &upstream) {
		if msg := upstream.UpstreamMessage(); msg != "" {
			return msg
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Internal error"
}

// toRPCError maps any failure raised while dispatching to a JSON-RPC error.
func toRPCError(err error) *RPCError {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	return &RPCError{Code: ErrorInternal, Message: ErrorMessage(err)}
}
