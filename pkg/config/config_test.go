package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/playsort/pkg/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db"
  max_open_conns: 3

source:
  type: feed
  playlists:
    - PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf
    - https://www.youtube.com/playlist?list=PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs
  timeout: 10s
  rate_limit: 250ms
  max_videos: 50
  feed_url: http://localhost:1234/feeds

schedule:
  update_interval: 1h
  max_workers: 2

categorizer:
  extra_rules:
    - keywords: [sourdough, "bread machine"]
      category: Food
      weight: 7
    - keywords: [vlog]
      category: "Lifestyle"
`
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 3, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)

		assert.Equal(t, SourceFeed, cfg.Source.Type)
		require.Len(t, cfg.Source.Playlists, 2)
		assert.Equal(t, "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf", cfg.Source.Playlists[0])
		assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
		assert.Equal(t, 250*time.Millisecond, cfg.Source.RateLimit)
		assert.Equal(t, 50, cfg.Source.MaxVideos)
		assert.Equal(t, "http://localhost:1234/feeds", cfg.Source.FeedURL)
		assert.Equal(t, "playsort/1.0", cfg.Source.UserAgent)

		assert.Equal(t, time.Hour, cfg.Schedule.UpdateInterval)
		assert.Equal(t, 2, cfg.Schedule.MaxWorkers)

		require.Len(t, cfg.Categorizer.ExtraRules, 2)
		assert.Equal(t, 7, cfg.Categorizer.ExtraRules[0].Weight)
		assert.Equal(t, 5, cfg.Categorizer.ExtraRules[1].Weight, "default weight")

		rule, err := cfg.Categorizer.ExtraRules[0].Rule()
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryFood, rule.Category)
		assert.Equal(t, []string{"sourdough", "bread machine"}, rule.Keywords)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "source:\n  playlists: [PL123]\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Contains(t, cfg.Database.DSN, "playsort.db")
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, SourceYouTube, cfg.Source.Type)
		assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
		assert.Equal(t, time.Second, cfg.Source.RateLimit)
		assert.Equal(t, 25, cfg.Source.MaxVideos)
		assert.Equal(t, 30*time.Minute, cfg.Schedule.UpdateInterval)
		assert.Equal(t, 4, cfg.Schedule.MaxWorkers)
		assert.Empty(t, cfg.Categorizer.ExtraRules)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("PLAYSORT_TEST_PLAYLIST", "PLfromEnv")
		cfg, err := Load(writeConfig(t, "source:\n  playlists: [$PLAYSORT_TEST_PLAYLIST]\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"PLfromEnv"}, cfg.Source.Playlists)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("invalid category in extra rule", func(t *testing.T) {
		configContent := `
source:
  playlists: [PL1]
categorizer:
  extra_rules:
    - keywords: [cake]
      category: Baking
`
		cfg, err := Load(writeConfig(t, configContent))
		require.ErrorIs(t, err, domain.ErrInvalidCategory)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "extra_rules[0]")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Source: SourceConfig{Playlists: []string{"PL1"}}}
		cfg.setDefaults()
		return cfg
	}
	require.NoError(t, validate(valid()))

	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"short server timeout", func(c *Config) { c.Server.Timeout = 100 * time.Millisecond }, "server timeout"},
		{"unknown source", func(c *Config) { c.Source.Type = "vimeo" }, "source.type"},
		{"no playlists", func(c *Config) { c.Source.Playlists = nil }, "source.playlists"},
		{"short source timeout", func(c *Config) { c.Source.Timeout = time.Millisecond }, "source timeout"},
		{"negative rate limit", func(c *Config) { c.Source.RateLimit = -time.Second }, "rate_limit"},
		{"max videos", func(c *Config) { c.Source.MaxVideos = -1 }, "max_videos"},
		{"short interval", func(c *Config) { c.Schedule.UpdateInterval = time.Second }, "update_interval"},
		{"workers", func(c *Config) { c.Schedule.MaxWorkers = -2 }, "max_workers"},
		{"rule without keywords", func(c *Config) {
			c.Categorizer.ExtraRules = []RuleConfig{{Category: "Food", Weight: 1}}
		}, "extra_rules[0]"},
		{"rule with negative weight", func(c *Config) {
			c.Categorizer.ExtraRules = []RuleConfig{{Keywords: []string{"x"}, Category: "Food", Weight: -1}}
		}, "malformed rule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Listen: ":9090", Timeout: 45 * time.Second},
		Source: SourceConfig{Type: SourceFeed, Playlists: []string{"PL1"}},
	}

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9090", listen)
	assert.Equal(t, 45*time.Second, timeout)
	assert.Equal(t, cfg.Source, cfg.GetSourceConfig())
}
