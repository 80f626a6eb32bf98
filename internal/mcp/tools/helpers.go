package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/domain/series"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
)

const dateLayout = "2006-01-02"

// decodeArgs unmarshals tool arguments; absent arguments leave dst untouched.
func decodeArgs(raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return mcp.NewInvalidParamsError("Invalid params: %v", err)
	}
	return nil
}

// maxWholeNumber is the largest integer a float64 holds exactly.
const maxWholeNumber = 1 << 53

// wholeNumber is an id argument advertised as a JSON number. Clients may
// send 2 or 2.0; fractional values are rejected.
type wholeNumber int

func (n *wholeNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f != math.Trunc(f) || math.Abs(f) > maxWholeNumber {
		return fmt.Errorf("expected a whole number, got %s", bytes.TrimSpace(data))
	}
	*n = wholeNumber(f)
	return nil
}

// intPtr converts an optional argument; absent stays nil.
func (n *wholeNumber) intPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

func missingArgs(names ...string) error {
	return mcp.NewInvalidParamsError("Invalid params: missing required argument(s): %s", strings.Join(names, ", "))
}

func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

func stringProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func dateProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Format: "date", Description: desc}
}

func numberProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

func boolProp(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: desc}
}

// seriesRefParams is shared by the tools that accept an id or a title
type seriesRefParams struct {
	SeriesID    *wholeNumber `json:"seriesId,omitempty"`
	SeriesTitle string       `json:"seriesTitle,omitempty"`
}

func (p seriesRefParams) ref() series.Ref {
	return series.Ref{ID: p.SeriesID.intPtr(), Title: p.SeriesTitle}
}

func seriesRefSchema(action string) *jsonschema.Schema {
	return objectSchema(map[string]*jsonschema.Schema{
		"seriesId":    numberProp("The ID of the series to " + action + ". Can be found via listSeries."),
		"seriesTitle": stringProp("Alternative: The title of the series to search for. Will be used to find the series ID if seriesId is not provided."),
	})
}
