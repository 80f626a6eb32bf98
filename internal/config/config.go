package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSonarrTimeout = 30 * time.Second

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 12009
	Sonarr   struct {
		URL     string
		APIKey  string
		Timeout time.Duration
	} // Sonarr API endpoint and credential
}

// Load populates config from environment variables, after loading a
// .env file from the working directory when one exists. Variables
// already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths; missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "12009",
	}
	cfg.Sonarr.Timeout = defaultSonarrTimeout

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("MCP_HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.Sonarr.URL = strings.TrimSpace(os.Getenv("SONARR_URL"))
	cfg.Sonarr.APIKey = strings.TrimSpace(os.Getenv("SONARR_API_KEY"))

	if v := os.Getenv("SONARR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SONARR_TIMEOUT %q", v)
		}
		cfg.Sonarr.Timeout = d
	}

	var missingVars []string

	if cfg.Sonarr.URL == "" {
		missingVars = append(missingVars, "SONARR_URL")
	}

	if cfg.Sonarr.APIKey == "" {
		missingVars = append(missingVars, "SONARR_API_KEY")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
