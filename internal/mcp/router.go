package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool represents an MCP tool implementation.
type Tool interface {
	Name() string
	Description() string
	InputSchema() *jsonschema.Schema
	Execute(ctx context.Context, args json.RawMessage) (Outcome, error)
}

// Router stores and dispatches MCP tools. It is filled once at startup
// and only read afterwards.
type Router struct {
	order []Tool
	tools map[string]Tool
}

// NewRouter creates an empty router instance.
func NewRouter() *Router {
	return &Router{
		tools: make(map[string]Tool),
	}
}

// RegisterTool adds a tool to the router registry.
func (r *Router) RegisterTool(tool Tool) error {
	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("tool %q already registered", name)
	}
	if schema := tool.InputSchema(); schema == nil || schema.Type != "object" {
		return fmt.Errorf("tool %q: input schema must be an object schema", name)
	}

	r.tools[name] = tool
	r.order = append(r.order, tool)
	return nil
}

// Lookup finds a tool by name.
func (r *Router) Lookup(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Tools returns the registered tools in registration order.
func (r *Router) Tools() []Tool {
	out := make([]Tool, len(r.order))
	copy(out, r.order)
	return out
}

// List exposes the flat descriptors used by tools/list.
func (r *Router) List() []*sdkmcp.Tool {
	out := make([]*sdkmcp.Tool, 0, len(r.order))
	for _, tool := range r.order {
		out = append(out, describe(tool))
	}
	return out
}

// LegacyList exposes the function-wrapped descriptors used by mcp.discover.
func (r *Router) LegacyList() []LegacyTool {
	out := make([]LegacyTool, 0, len(r.order))
	for _, tool := range r.order {
		out = append(out, LegacyTool{
			Type: "function",
			Function: LegacyFunction{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  tool.InputSchema(),
			},
		})
	}
	return out
}

// Call executes a tool by name.
func (r *Router) Call(ctx context.Context, name string, args json.RawMessage) (Outcome, error) {
	tool, ok := r.tools[name]
	if !ok {
		return Outcome{}, fmt.Errorf("tool %q not found", name)
	}

	return tool.Execute(ctx, args)
}

func describe(tool Tool) *sdkmcp.Tool {
	return &sdkmcp.Tool{
		Name:        tool.Name(),
		Description: tool.Description(),
		InputSchema: tool.InputSchema(),
	}
}
