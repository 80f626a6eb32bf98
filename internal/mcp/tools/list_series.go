package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

type seriesLister interface {
	ListSeries(ctx context.Context) ([]sonarr.Series, error)
}

// SeriesSummary is one entry of the listSeries result
type SeriesSummary struct {
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Status    string `json:"status"`
	Monitored bool   `json:"monitored"`
}

type ListSeries struct {
	client seriesLister
}

var listSeriesInputSchema = objectSchema(map[string]*jsonschema.Schema{})

func NewListSeries(client seriesLister) *ListSeries {
	return &ListSeries{client: client}
}

func (t *ListSeries) Name() string {
	return "listSeries"
}

func (t *ListSeries) Description() string {
	return "Retrieves a list of all TV series currently being tracked by Sonarr."
}

func (t *ListSeries) InputSchema() *jsonschema.Schema {
	return listSeriesInputSchema
}

func (t *ListSeries) Execute(ctx context.Context, _ json.RawMessage) (mcp.Outcome, error) {
	all, err := t.client.ListSeries(ctx)
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("list series: %w", err)
	}

	out := make([]SeriesSummary, 0, len(all))
	for _, s := range all {
		out = append(out, SeriesSummary{
			Title:     s.Title,
			Year:      s.Year,
			Status:    s.Status,
			Monitored: s.Monitored,
		})
	}

	return mcp.Value(out), nil
}
