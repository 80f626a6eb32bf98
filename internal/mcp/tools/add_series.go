package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

type seriesCreator interface {
	LookupSeries(ctx context.Context, term string) ([]sonarr.LookupSeries, error)
	AddSeries(ctx context.Context, payload map[string]any) (sonarr.Series, error)
}

type addSeriesParams struct {
	TvdbID                   *wholeNumber `json:"tvdbId"`
	Title                    string       `json:"title"`
	QualityProfileID         *wholeNumber `json:"qualityProfileId"`
	RootFolderPath           string       `json:"rootFolderPath"`
	Monitored                *bool        `json:"monitored,omitempty"`
	SearchForMissingEpisodes *bool        `json:"searchForMissingEpisodes,omitempty"`
}

func (p addSeriesParams) validate() error {
	var missing []string
	if p.TvdbID == nil {
		missing = append(missing, "tvdbId")
	}
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.QualityProfileID == nil {
		missing = append(missing, "qualityProfileId")
	}
	if p.RootFolderPath == "" {
		missing = append(missing, "rootFolderPath")
	}
	if len(missing) > 0 {
		return missingArgs(missing...)
	}
	return nil
}

// AddSeriesResult confirms a created series
type AddSeriesResult struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type AddSeries struct {
	client seriesCreator
	logger *logging.Logger
}

var addSeriesInputSchema = objectSchema(map[string]*jsonschema.Schema{
	"tvdbId":                   numberProp("The TVDB ID of the series to add. Found via lookupSeries."),
	"title":                    stringProp("The title of the series."),
	"qualityProfileId":         numberProp("The ID of the quality profile to use. The user must provide this."),
	"rootFolderPath":           stringProp("The absolute path on the server where the series should be stored. The user must provide this."),
	"monitored":                boolProp("Set to true to monitor the series for new episodes. Defaults to true."),
	"searchForMissingEpisodes": boolProp("Set to true to search for missing episodes after adding. Defaults to false."),
}, "tvdbId", "title", "qualityProfileId", "rootFolderPath")

func NewAddSeries(client seriesCreator, logger *logging.Logger) *AddSeries {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AddSeries{client: client, logger: logger}
}

func (t *AddSeries) Name() string {
	return "addSeries"
}

func (t *AddSeries) Description() string {
	return "Adds a new TV series to Sonarr. Requires details typically obtained from lookupSeries, along with user preferences like quality profile and root folder."
}

func (t *AddSeries) InputSchema() *jsonschema.Schema {
	return addSeriesInputSchema
}

// Execute re-reads the canonical series record by TVDB id (the title
// argument is informational only) and posts it back with the caller's
// settings layered on top.
func (t *AddSeries) Execute(ctx context.Context, args json.RawMessage) (mcp.Outcome, error) {
	var params addSeriesParams
	if err := decodeArgs(args, &params); err != nil {
		return mcp.Outcome{}, err
	}
	if err := params.validate(); err != nil {
		return mcp.Outcome{}, err
	}

	tvdbID := int(*params.TvdbID)
	matches, err := t.client.LookupSeries(ctx, fmt.Sprintf("tvdb:%d", tvdbID))
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("lookup series: %w", err)
	}
	if len(matches) == 0 {
		return mcp.Outcome{}, fmt.Errorf("Could not find series with tvdbId: %d", tvdbID)
	}

	payload := buildAddPayload(matches[0].Raw, params)

	t.logger.Info("adding series",
		"tvdb_id", tvdbID,
		"title", params.Title,
		"root_folder", params.RootFolderPath,
	)

	added, err := t.client.AddSeries(ctx, payload)
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("add series: %w", err)
	}

	return mcp.Value(AddSeriesResult{
		Success: true,
		Title:   added.Title,
		ID:      added.ID,
		Message: "Series added successfully.",
	}), nil
}

// buildAddPayload copies the lookup record and overlays the caller
// supplied fields, which win on collision.
func buildAddPayload(record map[string]any, params addSeriesParams) map[string]any {
	monitored := true
	if params.Monitored != nil {
		monitored = *params.Monitored
	}
	searchMissing := false
	if params.SearchForMissingEpisodes != nil {
		searchMissing = *params.SearchForMissingEpisodes
	}

	payload := make(map[string]any, len(record)+4)
	for k, v := range record {
		payload[k] = v
	}

	payload["qualityProfileId"] = int(*params.QualityProfileID)
	payload["rootFolderPath"] = params.RootFolderPath
	payload["monitored"] = monitored
	payload["addOptions"] = map[string]any{
		"searchForMissingEpisodes": searchMissing,
	}

	return payload
}
