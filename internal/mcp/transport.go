package mcp

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

const (
	jsonRPCVersion  = "2.0"
	protocolVersion = "2024-11-05"
	serverName      = "sonarr-mcp-server"
	serverVersion   = "1.1.0"
)

// RPCRequest represents a JSON-RPC 2.0 request
type RPCRequest struct {
	JSONRPC string          // must be "2.0"
	ID      json.RawMessage // identifier echoed back in responses
	Method  string          // RPC method name such as initialize
	Params  json.RawMessage // raw payload passed to the method
}

// wireRequest is decoded leniently so a wrong-typed jsonrpc or method
// field yields Invalid Request instead of a parse error.
type wireRequest struct {
	JSONRPC any             `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  any             `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// RPCResponse represents a JSON-RPC 2.0 response
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  any             `json:"result,omitempty"` // successful payload
	Error   *RPCError       `json:"error,omitempty"`  // populated when the call fails
	ID      json.RawMessage `json:"id"`               // mirrors request ID, null when absent
}

// InitializeResult describes server capabilities returned to the MCP client
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// ServerInfo provides metadata about this MCP server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Capabilities advertises tool support; the tools object is always empty.
type Capabilities struct {
	Tools map[string]any `json:"tools"`
}

// ListToolsResult enumerates every tool visible to the client
type ListToolsResult struct {
	Tools any `json:"tools"`
}

// LegacyTool is the function-wrapped descriptor served by mcp.discover
type LegacyTool struct {
	Type     string         `json:"type"`
	Function LegacyFunction `json:"function"`
}

// LegacyFunction carries the descriptor fields under the legacy names
type LegacyFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// CallToolParams is the payload for tools/call
type CallToolParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// HealthStatus is served by the health endpoint
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func initializeResult() InitializeResult {
	return InitializeResult{
		ProtocolVersion: protocolVersion,
		Capabilities:    Capabilities{Tools: map[string]any{}},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: serverVersion,
		},
	}
}
