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

const (
	seriesSearchCommand = "SeriesSearch"
	defaultCommandState = "queued"
)

type commandClient interface {
	SubmitCommand(ctx context.Context, cmd sonarr.CommandRequest) (sonarr.Command, error)
}

// SearchQueued reports a queued SeriesSearch command
type SearchQueued struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CommandID   int    `json:"commandId"`
	CommandName string `json:"commandName"`
	Status      string `json:"status"`
	SeriesID    int    `json:"seriesId"`
}

// SearchFailed reports a command Sonarr refused or never received
type SearchFailed struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SeriesID int    `json:"seriesId"`
}

type SearchMonitoredEpisodes struct {
	client   commandClient
	resolver SeriesResolver
	logger   *logging.Logger
}

var searchMonitoredEpisodesInputSchema = seriesRefSchema("search episodes for")

func NewSearchMonitoredEpisodes(client commandClient, resolver SeriesResolver, logger *logging.Logger) *SearchMonitoredEpisodes {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &SearchMonitoredEpisodes{client: client, resolver: resolver, logger: logger}
}

func (t *SearchMonitoredEpisodes) Name() string {
	return "searchMonitoredEpisodes"
}

func (t *SearchMonitoredEpisodes) Description() string {
	return "Triggers Sonarr to actively search for monitored episodes of a specific series. This will queue download searches for missing episodes."
}

func (t *SearchMonitoredEpisodes) InputSchema() *jsonschema.Schema {
	return searchMonitoredEpisodesInputSchema
}

// Execute queues a SeriesSearch. A failed submission is reported in the
// result payload rather than as an error.
func (t *SearchMonitoredEpisodes) Execute(ctx context.Context, args json.RawMessage) (mcp.Outcome, error) {
	var params seriesRefParams
	if err := decodeArgs(args, &params); err != nil {
		return mcp.Outcome{}, err
	}

	res, err := t.resolver.Resolve(ctx, params.ref())
	if err != nil {
		return mcp.Outcome{}, err
	}
	if !res.Resolved() {
		return mcp.SoftFailure(res.Failure), nil
	}

	cmd, err := t.client.SubmitCommand(ctx, sonarr.CommandRequest{
		Name:     seriesSearchCommand,
		SeriesID: res.ID,
	})
	if err != nil {
		t.logger.Warn("series search command failed", "series_id", res.ID, "err", err)
		return mcp.Value(SearchFailed{
			Success:  false,
			Message:  "Failed to queue search command: " + mcp.ErrorMessage(err),
			SeriesID: res.ID,
		}), nil
	}

	status := cmd.Status
	if status == "" {
		status = defaultCommandState
	}

	return mcp.Value(SearchQueued{
		Success:     true,
		Message:     fmt.Sprintf("Search command queued for series ID: %d", res.ID),
		CommandID:   cmd.ID,
		CommandName: cmd.Name,
		Status:      status,
		SeriesID:    res.ID,
	}), nil
}
