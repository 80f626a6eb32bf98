//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/honeycarbs/sonarr-mcp/internal/config"
	"github.com/honeycarbs/sonarr-mcp/internal/domain/series"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

// InitializeRouter builds the tool router with the Sonarr client wired up
func InitializeRouter(cfg config.Config, logger *logging.Logger) (*mcp.Router, error) {
	wire.Build(
		// Infrastructure - Sonarr
		provideSonarrConfig,
		sonarr.NewClient,

		// Domain
		wire.Bind(new(series.Lister), new(*sonarr.Client)),
		series.NewResolver,

		// Tools
		provideRouter,
	)

	return &mcp.Router{}, nil
}
