package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/freshness/pkg/freshness"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen   string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		PageSize int           `yaml:"page_size" json:"page_size" jsonschema:"default=50,minimum=1,description=Articles per page"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:freshness.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Freshness FreshnessConfig `yaml:"freshness" json:"freshness" jsonschema:"description=Freshness evaluation settings"`

	Sync SyncConfig `yaml:"sync" json:"sync" jsonschema:"description=Article import settings"`

	Sources []SourceConfig `yaml:"sources" json:"sources" jsonschema:"description=Site feeds registered on startup"`
}

// FreshnessConfig holds site-wide evaluation settings
type FreshnessConfig struct {
	Timezone         string `yaml:"timezone" json:"timezone" jsonschema:"description=IANA timezone for due date calculation, empty for host zone"`
	DateLayout       string `yaml:"date_layout" json:"date_layout" jsonschema:"default=2006-01-02,description=Go time layout for dates shown in details"`
	DefaultThreshold int    `yaml:"default_threshold" json:"default_threshold" jsonschema:"default=30,minimum=1,description=Staleness threshold in days used until one is saved"`
}

// SyncConfig holds feed import settings
type SyncConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable periodic import"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Import interval"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum concurrent source imports"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout for a single feed or page fetch"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Freshness/1.0,description=User agent for HTTP requests"`
	Retries    int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Fetch attempts per feed"`
	ProbeDates bool          `yaml:"probe_dates" json:"probe_dates" jsonschema:"default=false,description=Read article pages for entries without dates"`
	ProbeRate  time.Duration `yaml:"probe_rate" json:"probe_rate" jsonschema:"default=1s,description=Minimum delay between article page fetches"`
}

// SourceConfig describes a site feed to register
type SourceConfig struct {
	URL   string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Title string `yaml:"title" json:"title" jsonschema:"description=Display name"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{}
	cfg.Sync.Enabled = true
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, warn only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.PageSize == 0 {
		cfg.Server.PageSize = 50
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:freshness.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Freshness.DateLayout == "" {
		cfg.Freshness.DateLayout = freshness.DefaultDateLayout
	}
	if cfg.Freshness.DefaultThreshold == 0 {
		cfg.Freshness.DefaultThreshold = freshness.DefaultThreshold
	}

	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = 30 * time.Minute
	}
	if cfg.Sync.MaxWorkers == 0 {
		cfg.Sync.MaxWorkers = 5
	}
	if cfg.Sync.Timeout == 0 {
		cfg.Sync.Timeout = 30 * time.Second
	}
	if cfg.Sync.UserAgent == "" {
		cfg.Sync.UserAgent = "Freshness/1.0"
	}
	if cfg.Sync.Retries == 0 {
		cfg.Sync.Retries = 3
	}
	if cfg.Sync.ProbeRate == 0 {
		cfg.Sync.ProbeRate = time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.PageSize < 1 {
		return fmt.Errorf("server.page_size must be at least 1")
	}

	if cfg.Freshness.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Freshness.Timezone); err != nil {
			return fmt.Errorf("freshness.timezone %q: %w", cfg.Freshness.Timezone, err)
		}
	}
	if cfg.Freshness.DefaultThreshold < 1 {
		return fmt.Errorf("freshness.default_threshold must be at least 1")
	}

	if cfg.Sync.Enabled && cfg.Sync.Interval < time.Minute {
		return fmt.Errorf("sync.interval must be at least 1 minute")
	}
	if cfg.Sync.MaxWorkers < 1 {
		return fmt.Errorf("sync.max_workers must be at least 1")
	}
	if cfg.Sync.Retries < 1 {
		return fmt.Errorf("sync.retries must be at least 1")
	}

	for i, src := range cfg.Sources {
		if src.URL == "" {
			return fmt.Errorf("sources[%d].url is required", i)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFreshnessConfig returns freshness evaluation settings
func (c *Config) GetFreshnessConfig() FreshnessConfig {
	return c.Freshness
}

// GetPageSize returns the number of articles per page
func (c *Config) GetPageSize() int {
	return c.Server.PageSize
}

// Evaluator returns a freshness evaluator for the configured timezone and layout
func (c *Config) Evaluator() freshness.Evaluator {
	return freshness.Evaluator{Timezone: c.Freshness.Timezone, DateLayout: c.Freshness.DateLayout}
}
