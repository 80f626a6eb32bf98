package main

import (
	"github.com/honeycarbs/sonarr-mcp/internal/config"
	"github.com/honeycarbs/sonarr-mcp/internal/domain/series"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp"
	"github.com/honeycarbs/sonarr-mcp/internal/mcp/tools"
	"github.com/honeycarbs/sonarr-mcp/pkg/logging"
	"github.com/honeycarbs/sonarr-mcp/pkg/sonarr"
)

// provideSonarrConfig extracts Sonarr config from main config
func provideSonarrConfig(cfg config.Config) sonarr.Config {
	return sonarr.Config{
		BaseURL: cfg.Sonarr.URL,
		APIKey:  cfg.Sonarr.APIKey,
		Timeout: cfg.Sonarr.Timeout,
	}
}

// provideRouter registers every tool into a fresh router
func provideRouter(client *sonarr.Client, resolver *series.Resolver, logger *logging.Logger) (*mcp.Router, error) {
	router := mcp.NewRouter()
	if err := tools.RegisterAll(router, tools.Deps{
		Client:   client,
		Resolver: resolver,
		Logger:   logger.Named("tools"),
	}); err != nil {
		return nil, err
	}
	return router, nil
}
