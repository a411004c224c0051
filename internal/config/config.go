package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// AppConfig holds everything the service needs: dataset inputs, optional
// batch mode, cache retention and server settings. Values come from an
// optional YAML file (CONFIG_FILE) with environment variables taking
// precedence.
type AppConfig struct {
	// Dataset inputs; local paths or http(s) URLs.
	AirportsFile   string `yaml:"airports_file" validate:"required"`
	DirectionsFile string `yaml:"directions_file" validate:"required"`
	WeatherFile    string `yaml:"weather_file"`

	// Batch mode: when MissionsFile is set the process runs the missions and
	// writes ResultsFile instead of serving HTTP.
	MissionsFile string `yaml:"missions_file"`
	ResultsFile  string `yaml:"results_file"`

	// ReloadInterval controls how often the dataset is rebuilt from its
	// inputs (0 = never reload).
	ReloadInterval time.Duration `yaml:"reload_interval"`

	// Plan cache retention.
	CacheMaxEntries int           `yaml:"cache_max_entries"`
	CacheMaxAge     time.Duration `yaml:"cache_max_age"`

	// Optional coordinate backfill for airports loaded without coordinates.
	GeocoderAPIKey    string  `yaml:"geocoder_api_key"`
	GeocodeRatePerSec float64 `yaml:"geocode_rate_per_sec"`

	// Outbound HTTP timeout for remote dataset downloads.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	Port string `yaml:"port"`
}

// Load reads configuration from an optional YAML file and the environment,
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.AirportsFile = getenvDefault("AIRPORTS_FILE", cfg.AirportsFile)
	cfg.DirectionsFile = getenvDefault("DIRECTIONS_FILE", cfg.DirectionsFile)
	cfg.WeatherFile = getenvDefault("WEATHER_FILE", cfg.WeatherFile)
	cfg.MissionsFile = getenvDefault("MISSIONS_FILE", cfg.MissionsFile)
	cfg.ResultsFile = getenvDefault("RESULTS_FILE", cfg.ResultsFile)
	cfg.GeocoderAPIKey = getenvDefault("GEOCODER_API_KEY", cfg.GeocoderAPIKey)
	cfg.Port = getenvDefault("PORT", defaultString(cfg.Port, "8080"))

	var err error
	if cfg.ReloadInterval, err = getenvDuration("RELOAD_INTERVAL", cfg.ReloadInterval); err != nil {
		return nil, err
	}
	if cfg.CacheMaxAge, err = getenvDuration("CACHE_MAX_AGE", defaultDuration(cfg.CacheMaxAge, time.Hour)); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", defaultDuration(cfg.HTTPTimeout, 30*time.Second)); err != nil {
		return nil, err
	}

	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", defaultInt(cfg.CacheMaxEntries, 1024))
	if cfg.GeocodeRatePerSec == 0 {
		cfg.GeocodeRatePerSec = 5
	}

	if cfg.MissionsFile != "" && cfg.ResultsFile == "" {
		return nil, fmt.Errorf("RESULTS_FILE is required when MISSIONS_FILE is set")
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// BatchMode reports whether the process should run missions and exit instead
// of serving HTTP.
func (c *AppConfig) BatchMode() bool {
	return c.MissionsFile != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func defaultInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func defaultDuration(v, def time.Duration) time.Duration {
	if v != 0 {
		return v
	}
	return def
}
