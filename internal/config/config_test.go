package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/raysh454/scrapedemo/internal/demoserver"
)

func TestDefault_MatchesServerDefaults(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, demoserver.DefaultConfig(), cfg.Config)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, time.Second, cfg.ScrapeDelay)
	assert.Equal(t, 1, cfg.MaxConnections)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "production", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 7000,
		"root": "/srv/www",
		"scrape_delay": "2s",
		"log_format": "development"
	}`), 0o644))

	t.Setenv("SCRAPEDEMO_PORT", "9000")
	t.Setenv("SCRAPEDEMO_ENABLE_DOWNLOADS", "true")

	cfg, err := Load(LoadOptions{FileName: path})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port, "env beats file")
	assert.Equal(t, "/srv/www", cfg.Root)
	assert.Equal(t, 2*time.Second, cfg.ScrapeDelay)
	assert.Equal(t, "development", cfg.LogFormat)
	assert.True(t, cfg.EnableDownloads)
	assert.Equal(t, 1, cfg.MaxConnections, "untouched keys keep defaults")
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(LoadOptions{
		EnvPrefix: "SCRAPEDEMO_TEST_UNUSED_",
		Overrides: map[string]any{"max_connections": 4, "enable_docs": true},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxConnections)
	assert.True(t, cfg.EnableDocs)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
	}{
		{"zero connections", map[string]any{"max_connections": 0}},
		{"port out of range", map[string]any{"port": 70000}},
		{"negative delay", map[string]any{"scrape_delay": "-1s"}},
		{"unknown format", map[string]any{"log_format": "xml"}},
		{"empty body limit", map[string]any{"max_body_bytes": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(LoadOptions{EnvPrefix: "SCRAPEDEMO_TEST_UNUSED_", Overrides: tt.overrides})
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(LoadOptions{FileName: filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)
}

func TestLoad_CLIFlags(t *testing.T) {
	t.Setenv("SCRAPEDEMO_ROOT", "/from/env")
	t.Setenv("SCRAPEDEMO_PORT", "9000")

	var got Config
	app := &cli.App{
		Name: "demo",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Value: 8000},
			&cli.StringFlag{Name: "root", Value: "."},
			&cli.DurationFlag{Name: "scrape-delay", Value: time.Second},
			&cli.BoolFlag{Name: "enable-docs"},
			&cli.StringFlag{Name: "config"},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := Load(LoadOptions{Cli: ctx})
			got = cfg
			return err
		},
	}

	err := app.Run([]string{"demo", "--port", "9100", "--scrape-delay", "300ms", "--enable-docs"})
	require.NoError(t, err)

	assert.Equal(t, 9100, got.Port, "flag beats env")
	assert.Equal(t, "/from/env", got.Root, "unset flag must not shadow env")
	assert.Equal(t, 300*time.Millisecond, got.ScrapeDelay)
	assert.True(t, got.EnableDocs)
}

func TestKeyMapping(t *testing.T) {
	assert.Equal(t, "scrape_delay", envKey("SCRAPEDEMO_SCRAPE_DELAY", EnvPrefix))
	assert.Equal(t, "a.b", envKey("SCRAPEDEMO_A__B", EnvPrefix))
	assert.Equal(t, "max_connections", flagKey("max-connections"))
	assert.Equal(t, "", flagKey("config"))
}
