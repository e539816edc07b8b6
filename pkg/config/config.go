package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/playsort/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// source types
const (
	SourceYouTube = "youtube"
	SourceFeed    = "feed"
)

// Config holds the application configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database    DatabaseConfig    `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Source      SourceConfig      `yaml:"source" json:"source" jsonschema:"description=Playlist source configuration"`
	Schedule    ScheduleConfig    `yaml:"schedule" json:"schedule" jsonschema:"description=Sync scheduler configuration"`
	Categorizer CategorizerConfig `yaml:"categorizer" json:"categorizer" jsonschema:"description=Categorization rules configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds playlist cache database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:playsort.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// SourceConfig defines where playlists come from
type SourceConfig struct {
	Type      string        `yaml:"type" json:"type" jsonschema:"default=youtube,enum=youtube,enum=feed,description=Playlist source type"`
	Playlists []string      `yaml:"playlists" json:"playlists" jsonschema:"required,minItems=1,description=Playlist IDs or URLs to track"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=playsort/1.0,description=User agent for HTTP requests"`
	RateLimit time.Duration `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=1s,description=Minimal delay between source requests"`
	MaxVideos int           `yaml:"max_videos" json:"max_videos" jsonschema:"default=25,minimum=1,description=Default number of videos returned for a playlist"`
	FeedURL   string        `yaml:"feed_url" json:"feed_url" jsonschema:"description=Base URL of playlist feeds (feed source only)"`
}

// ScheduleConfig holds sync scheduler settings
type ScheduleConfig struct {
	UpdateInterval time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=30m,description=Playlist sync interval"`
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,description=Maximum concurrent playlist fetches"`
}

// CategorizerConfig holds rules added on top of the built-in ones
type CategorizerConfig struct {
	ExtraRules []RuleConfig `yaml:"extra_rules" json:"extra_rules" jsonschema:"description=Custom rules added at startup after built-in rules"`
}

// RuleConfig is a custom categorization rule as written in the config file
type RuleConfig struct {
	Keywords []string `yaml:"keywords" json:"keywords" jsonschema:"required,minItems=1,description=Words or phrases to match"`
	Category string   `yaml:"category" json:"category" jsonschema:"required,description=Category label"`
	Weight   int      `yaml:"weight" json:"weight" jsonschema:"default=5,minimum=1,description=Score added per keyword occurrence"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:playsort.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// source
	if c.Source.Type == "" {
		c.Source.Type = SourceYouTube
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 30 * time.Second
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "playsort/1.0"
	}
	if c.Source.RateLimit == 0 {
		c.Source.RateLimit = time.Second
	}
	if c.Source.MaxVideos == 0 {
		c.Source.MaxVideos = 25
	}

	// schedule
	if c.Schedule.UpdateInterval == 0 {
		c.Schedule.UpdateInterval = 30 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 4
	}

	// categorizer
	for i := range c.Categorizer.ExtraRules {
		if c.Categorizer.ExtraRules[i].Weight == 0 {
			c.Categorizer.ExtraRules[i].Weight = 5
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	switch cfg.Source.Type {
	case SourceYouTube, SourceFeed:
	default:
		return fmt.Errorf("source.type %q is not supported, use %q or %q", cfg.Source.Type, SourceYouTube, SourceFeed)
	}
	if len(cfg.Source.Playlists) == 0 {
		return fmt.Errorf("source.playlists is required")
	}
	if cfg.Source.Timeout < time.Second {
		return fmt.Errorf("source timeout must be at least 1 second")
	}
	if cfg.Source.RateLimit < 0 {
		return fmt.Errorf("source.rate_limit must be non-negative")
	}
	if cfg.Source.MaxVideos < 1 {
		return fmt.Errorf("source.max_videos must be at least 1")
	}

	if cfg.Schedule.UpdateInterval < time.Minute {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	if cfg.Schedule.MaxWorkers < 1 {
		return fmt.Errorf("schedule.max_workers must be at least 1")
	}

	for i, r := range cfg.Categorizer.ExtraRules {
		if _, err := r.Rule(); err != nil {
			return fmt.Errorf("categorizer.extra_rules[%d]: %w", i, err)
		}
	}

	return nil
}

// Rule converts the config entry to a validated domain rule
func (r RuleConfig) Rule() (domain.Rule, error) {
	cat, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.Rule{}, err
	}
	return domain.NewRule(r.Keywords, cat, r.Weight)
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSourceConfig returns playlist source configuration
func (c *Config) GetSourceConfig() SourceConfig {
	return c.Source
}
