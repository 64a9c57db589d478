package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.MaxCachedSnapshots != 64 {
		t.Errorf("max cached = %d, want 64", cfg.Storage.MaxCachedSnapshots)
	}
	if cfg.Clients.Predict.GetTimeout().Seconds() != 30 {
		t.Errorf("predict timeout = %v, want 30s", cfg.Clients.Predict.GetTimeout())
	}
}

func TestLoadConfig_MissingFileSkipped(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/myxview.toml")
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("environment = %s", cfg.Environment)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myxview.toml")
	body := `
environment = "production"

[server]
port = 9090

[storage.snapshots]
path = "/data/eod"
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Snapshots.Path != "/data/eod" {
		t.Errorf("snapshots path = %s", cfg.Storage.Snapshots.Path)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	// Untouched sections keep their defaults.
	if cfg.Storage.Watchlist.Path != "data/watchlist" {
		t.Errorf("watchlist path = %s", cfg.Storage.Watchlist.Path)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MYX_PORT", "7070")
	t.Setenv("MYX_DATA_PATH", "/override/eod")
	t.Setenv("MYX_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Storage.Snapshots.Path != "/override/eod" {
		t.Errorf("snapshots path = %s", cfg.Storage.Snapshots.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s", cfg.Logging.Level)
	}
}

func TestPredictConfig_GetTimeout_Fallback(t *testing.T) {
	c := PredictConfig{Timeout: "not a duration"}
	if c.GetTimeout().Seconds() != 30 {
		t.Errorf("fallback timeout = %v, want 30s", c.GetTimeout())
	}
}
