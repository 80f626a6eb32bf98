package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "MCP_HOST", "PORT", "SONARR_URL", "SONARR_API_KEY", "SONARR_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SONARR_URL", "http://sonarr:8989")
	t.Setenv("SONARR_API_KEY", "abc")

	cfg, err := LoadFiles()
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if cfg.Port != "12009" || cfg.Host != "0.0.0.0" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Sonarr.URL != "http://sonarr:8989" || cfg.Sonarr.APIKey != "abc" {
		t.Fatalf("unexpected sonarr config: %+v", cfg.Sonarr)
	}
	if cfg.Sonarr.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Sonarr.Timeout)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	clearEnv(t)

	_, err := LoadFiles()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "SONARR_URL") || !strings.Contains(err.Error(), "SONARR_API_KEY") {
		t.Fatalf("expected both vars named, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), ".env")
	content := "SONARR_URL=http://from-file:8989\nSONARR_API_KEY=filekey\nPORT=1234\nSONARR_TIMEOUT=5s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SONARR_URL")
		os.Unsetenv("SONARR_API_KEY")
		os.Unsetenv("SONARR_TIMEOUT")
	})

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if cfg.Sonarr.URL != "http://from-file:8989" || cfg.Sonarr.APIKey != "filekey" {
		t.Fatalf("expected values from file, got %+v", cfg.Sonarr)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected environment to win over file, got port %q", cfg.Port)
	}
	if cfg.Sonarr.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Sonarr.Timeout)
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("SONARR_URL", "http://sonarr:8989")
	t.Setenv("SONARR_API_KEY", "abc")
	t.Setenv("SONARR_TIMEOUT", "soon")

	if _, err := LoadFiles(); err == nil {
		t.Fatalf("expected invalid timeout error")
	}
}
