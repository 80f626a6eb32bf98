package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/sonarr-mcp/internal/domain/series"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

// Registrar describes the subset of the router needed to register tools.
type Registrar interface {
	RegisterTool(mcp.Tool) error
}

// SonarrClient is the Sonarr API surface the tools use
type SonarrClient interface {
	ListSeries(ctx context.Context) ([]sonarr.Series, error)
	Calendar(ctx context.Context, params sonarr.CalendarParams) ([]sonarr.Episode, error)
	LookupSeries(ctx context.Context, term string) ([]sonarr.LookupSeries, error)
	AddSeries(ctx context.Context, payload map[string]any) (sonarr.Series, error)
	Episodes(ctx context.Context, seriesID int) ([]sonarr.Episode, error)
	SubmitCommand(ctx context.Context, cmd sonarr.CommandRequest) (sonarr.Command, error)
}

// SeriesResolver turns an id-or-title reference into a series id
type SeriesResolver interface {
	Resolve(ctx context.Context, ref series.Ref) (series.Resolution, error)
}

// Deps carries everything the tools need
type Deps struct {
	Client   SonarrClient
	Resolver SeriesResolver
	Logger   *logging.Logger
	Clock    func() time.Time
}

// RegisterAll installs every tool into the provided registrar, in the
// order they are advertised.
func RegisterAll(r Registrar, deps Deps) error {
	if deps.Client == nil {
		return fmt.Errorf("tools: sonarr client is required")
	}
	if deps.Resolver == nil {
		deps.Resolver = series.NewResolver(deps.Client)
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	defaultTools := []mcp.Tool{
		NewListSeries(deps.Client),
		NewGetCalendar(deps.Client, deps.Clock),
		NewLookupSeries(deps.Client),
		NewAddSeries(deps.Client, deps.Logger),
		NewGetMonitoredEpisodes(deps.Client, deps.Resolver),
		NewSearchMonitoredEpisodes(deps.Client, deps.Resolver, deps.Logger),
	}

	for _, tool := range defaultTools {
		if err := r.RegisterTool(tool); err != nil {
			return err
		}
	}

	deps.Logger.Info("sonarr tools registered", "count", len(defaultTools))
	return nil
}
