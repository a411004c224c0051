package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AIRPORTS_FILE", "airports.csv")
	t.Setenv("DIRECTIONS_FILE", "directions.csv")
	t.Setenv("WEATHER_FILE", "weather.csv")
	t.Setenv("RELOAD_INTERVAL", "15m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AirportsFile != "airports.csv" {
		t.Fatalf("unexpected airports file %q", cfg.AirportsFile)
	}
	if cfg.ReloadInterval != 15*time.Minute {
		t.Fatalf("unexpected reload interval %v", cfg.ReloadInterval)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.BatchMode() {
		t.Fatal("expected server mode without MISSIONS_FILE")
	}
}

func TestLoadRequiresDatasetInputs(t *testing.T) {
	t.Setenv("AIRPORTS_FILE", "")
	t.Setenv("DIRECTIONS_FILE", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when dataset inputs are missing")
	}
}

func TestLoadBatchModeNeedsResultsFile(t *testing.T) {
	t.Setenv("AIRPORTS_FILE", "airports.csv")
	t.Setenv("DIRECTIONS_FILE", "directions.csv")
	t.Setenv("MISSIONS_FILE", "missions.in")
	t.Setenv("RESULTS_FILE", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when MISSIONS_FILE is set without RESULTS_FILE")
	}

	t.Setenv("RESULTS_FILE", "results.out")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.BatchMode() {
		t.Fatal("expected batch mode")
	}
}

func TestLoadFromYAMLFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `airports_file: file-airports.csv
directions_file: file-directions.csv
port: "9090"
cache_max_entries: 16
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("AIRPORTS_FILE", "env-airports.csv")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Environment wins over the file.
	if cfg.AirportsFile != "env-airports.csv" {
		t.Fatalf("expected env override, got %q", cfg.AirportsFile)
	}
	if cfg.DirectionsFile != "file-directions.csv" {
		t.Fatalf("expected file value, got %q", cfg.DirectionsFile)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected file port, got %q", cfg.Port)
	}
	if cfg.CacheMaxEntries != 16 {
		t.Fatalf("expected file cache size, got %d", cfg.CacheMaxEntries)
	}
}
