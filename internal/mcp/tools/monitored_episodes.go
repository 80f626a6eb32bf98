package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

const unknownSeriesTitle = "Unknown"

type episodeLister interface {
	Episodes(ctx context.Context, seriesID int) ([]sonarr.Episode, error)
}

// EpisodeSummary is one monitored episode
type EpisodeSummary struct {
	ID            int    `json:"id"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Title         string `json:"title"`
	AirDate       string `json:"airDate"`
	HasFile       bool   `json:"hasFile"`
	Monitored     bool   `json:"monitored"`
	Overview      string `json:"overview"`
}

// MonitoredEpisodesResult is the getMonitoredEpisodes payload
type MonitoredEpisodesResult struct {
	SeriesID               int              `json:"seriesId"`
	SeriesTitle            string           `json:"seriesTitle"`
	TotalMonitoredEpisodes int              `json:"totalMonitoredEpisodes"`
	Episodes               []EpisodeSummary `json:"episodes"`
}

type GetMonitoredEpisodes struct {
	client   episodeLister
	resolver SeriesResolver
}

var getMonitoredEpisodesInputSchema = seriesRefSchema("get monitored episodes for")

func NewGetMonitoredEpisodes(client episodeLister, resolver SeriesResolver) *GetMonitoredEpisodes {
	return &GetMonitoredEpisodes{client: client, resolver: resolver}
}

func (t *GetMonitoredEpisodes) Name() string {
	return "getMonitoredEpisodes"
}

func (t *GetMonitoredEpisodes) Description() string {
	return "Retrieves all monitored episodes for a specific series. Useful for checking which episodes are being tracked for download."
}

func (t *GetMonitoredEpisodes) InputSchema() *jsonschema.Schema {
	return getMonitoredEpisodesInputSchema
}

func (t *GetMonitoredEpisodes) Execute(ctx context.Context, args json.RawMessage) (mcp.Outcome, error) {
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

	episodes, err := t.client.Episodes(ctx, res.ID)
	if err != nil {
		return mcp.Outcome{}, fmt.Errorf("list episodes: %w", err)
	}

	monitored := make([]EpisodeSummary, 0, len(episodes))
	seriesTitle := ""
	for _, ep := range episodes {
		if !ep.Monitored {
			continue
		}
		if len(monitored) == 0 {
			seriesTitle = ep.SeriesTitle()
		}
		monitored = append(monitored, EpisodeSummary{
			ID:            ep.ID,
			SeasonNumber:  ep.SeasonNumber,
			EpisodeNumber: ep.EpisodeNumber,
			Title:         ep.Title,
			AirDate:       ep.AirDateUtc,
			HasFile:       ep.HasFile,
			Monitored:     ep.Monitored,
			Overview:      ep.Overview,
		})
	}

	if len(monitored) == 0 {
		return mcp.SoftFailure(fmt.Sprintf("No monitored episodes found for series ID: %d", res.ID)), nil
	}
	if seriesTitle == "" {
		seriesTitle = unknownSeriesTitle
	}

	return mcp.Value(MonitoredEpisodesResult{
		SeriesID:               res.ID,
		SeriesTitle:            seriesTitle,
		TotalMonitoredEpisodes: len(monitored),
		Episodes:               monitored,
	}), nil
}
