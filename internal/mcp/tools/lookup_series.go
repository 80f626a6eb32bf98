package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

const noLookupMatches = "No series found matching that term."

type lookupClient interface {
	LookupSeries(ctx context.Context, term string) ([]sonarr.LookupSeries, error)
}

type lookupParams struct {
	SearchTerm string `json:"searchTerm"`
}

// SeasonSummary is the per-season monitoring flag in lookup results
type SeasonSummary struct {
	SeasonNumber int  `json:"seasonNumber"`
	Monitored    bool `json:"monitored"`
}

// LookupEntry carries the details needed to add a series
type LookupEntry struct {
	Title   string          `json:"title"`
	Year    int             `json:"year"`
	TvdbID  int             `json:"tvdbId"`
	Seasons []SeasonSummary `json:"seasons"`
}

type LookupSeries struct {
	client lookupClient
}

var lookupSeriesInputSchema = objectSchema(map[string]*jsonschema.Schema{
	"searchTerm": stringProp("The name of the TV series to search for."),
}, "searchTerm")

func NewLookupSeries(client lookupClient) *LookupSeries {
	return &LookupSeries{client: client}
}

func (t *LookupSeries) Name() string {
	return "lookupSeries"
}

func (t *LookupSeries) Description() string {
	return "Searches for a new TV series by name to get its details required for adding it."
}

func (t *LookupSeries) InputSchema() *jsonschema.Schema {
	return lookupSeriesInputSchema
}

func (t *LookupSeries) Execute(ctx context.Context, args json.RawMessage) (mcp.Outcome, error) {
	var params lookupParams
	if err := decodeArgs(args, &params); err != nil {
		return mcp.Outcome{}, err
	}
	if strings.TrimSpace(params.SearchTerm) == "" {
		return mcp.Outcome{}, missingArgs("searchTerm")
	}

	results, err := t.client.LookupSeries(ctx, params.SearchTerm)
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("lookup series: %w", err)
	}

	if len(results) == 0 {
		return mcp.SoftFailure(noLookupMatches), nil
	}

	out := make([]LookupEntry, 0, len(results))
	for _, r := range results {
		seasons := make([]SeasonSummary, 0, len(r.Seasons))
		for _, s := range r.Seasons {
			seasons = append(seasons, SeasonSummary{SeasonNumber: s.SeasonNumber, Monitored: s.Monitored})
		}
		out = append(out, LookupEntry{
			Title:   r.Title,
			Year:    r.Year,
			TvdbID:  r.TvdbID,
			Seasons: seasons,
		})
	}

	return mcp.Value(out), nil
}
