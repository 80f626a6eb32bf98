package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Outcome is what a tool returns on a successful run: either a
// structured value or a soft failure message. Soft failures are
// ordinary results on the wire, never JSON-RPC errors.
type Outcome struct {
	value  any
	soft   string
	isSoft bool
}

// Value wraps a structured tool result
func Value(v any) Outcome {
	return Outcome{value: v}
}

// SoftFailure wraps a domain-level "not found / insufficient input" message
func SoftFailure(msg string) Outcome {
	return Outcome{soft: msg, isSoft: true}
}

// IsSoftFailure reports whether the outcome carries a soft failure message
func (o Outcome) IsSoftFailure() bool {
	return o.isSoft
}

// Payload is the raw result used by the direct-call dialect.
func (o Outcome) Payload() any {
	if o.isSoft {
		return o.soft
	}
	return o.value
}

// Text renders the outcome for a text content block: soft failures and
// string values verbatim, everything else as indented JSON.
func (o Outcome) Text() (string, error) {
	if o.isSoft {
		return o.soft, nil
	}
	if s, ok := o.value.(string); ok {
		return s, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o.value); err != nil {
		return "", fmt.Errorf("encode tool result: %w", err)
	}

	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
