package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"

	"github.com/raysh454/scrapedemo/internal/cliflags"
	"github.com/raysh454/scrapedemo/internal/demoserver"
	"github.com/raysh454/scrapedemo/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. SCRAPEDEMO_PORT.
const EnvPrefix = "SCRAPEDEMO_"

var ErrInvalidConfig = errors.New("invalid config")

// Config is the full application configuration. Server settings are
// squashed so every key lives at the top level.
type Config struct {
	demoserver.Config `conf:",squash"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `conf:"log_level" default:"info"`

	// LogFormat is "production" (JSON) or "development" (console).
	LogFormat string `conf:"log_format" default:"production"`
}

// Default returns a Config with every default tag applied.
func Default() (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return cfg, fmt.Errorf("applying config defaults: %w", err)
	}
	return cfg, nil
}

type LoadOptions struct {
	// FileName is an optional JSON config file.
	FileName string

	// EnvPrefix overrides EnvPrefix when set.
	EnvPrefix string

	// Cli supplies flags the user set explicitly.
	Cli *cli.Context

	// Overrides are applied last; mostly useful in tests.
	Overrides map[string]any

	// Log receives load diagnostics. Optional.
	Log logging.Logger
}

// Load layers defaults < file < env < flags < overrides and validates
// the result.
func Load(opts LoadOptions) (Config, error) {
	log := opts.Log
	if log == nil {
		log = logging.NewNopLogger()
	}

	cfg, err := Default()
	if err != nil {
		return cfg, err
	}

	k := koanf.New(".")

	if opts.FileName != "" {
		if err := k.Load(file.Provider(opts.FileName), json.Parser()); err != nil {
			return cfg, fmt.Errorf("loading config file %s: %w", opts.FileName, err)
		}
		log.Debug("loaded config file", logging.Field{Key: "file", Value: opts.FileName})
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	if err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return envKey(s, prefix)
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env config: %w", err)
	}

	if opts.Cli != nil {
		if err := k.Load(cliflags.Provider(opts.Cli, ".", flagKey), nil); err != nil {
			return cfg, fmt.Errorf("loading cli flags: %w", err)
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return cfg, fmt.Errorf("loading config overrides: %w", err)
		}
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the cross-field constraints koanf cannot express.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.MaxConnections < 1 {
		return fmt.Errorf("%w: max_connections must be at least 1, got %d", ErrInvalidConfig, c.MaxConnections)
	}
	if c.ScrapeDelay < 0 {
		return fmt.Errorf("%w: scrape_delay must not be negative", ErrInvalidConfig)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "production", "development":
	default:
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// envKey turns SCRAPEDEMO_SCRAPE_DELAY into scrape_delay. A double
// underscore separates nesting levels.
func envKey(s, prefix string) string {
	s = strings.TrimPrefix(s, prefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

// flagKey turns --scrape-delay into scrape_delay. The config flag itself
// names the file and is not a key.
func flagKey(name string) string {
	if name == "config" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
