// Package config loads mathquest settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/session"
)

// Config is the full set of user settings.
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Language    string            `yaml:"language"`
	Log         LogConfig         `yaml:"log"`
	Game        GameConfig        `yaml:"game"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	LLM         LLMConfig         `yaml:"llm"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the log file. Level is one of debug, info, warn or
// error; Format is text or json.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// GameConfig holds the presentation delays around each question. The
// per-question countdown is not configurable.
type GameConfig struct {
	ReadyDelay    time.Duration `yaml:"ready_delay"`
	FeedbackDelay time.Duration `yaml:"feedback_delay"`
}

type LeaderboardConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Limit  int    `yaml:"limit"`
}

// LLMConfig selects the optional coach provider. API keys only come from
// the environment.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`

	AnthropicKey string `yaml:"-"`
	OpenAIKey    string `yaml:"-"`
	GeminiKey    string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	timing := session.DefaultTiming()
	return &Config{
		Language: string(i18n.ID),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Game: GameConfig{
			ReadyDelay:    timing.ReadyDelay,
			FeedbackDelay: timing.FeedbackDelay,
		},
		Leaderboard: LeaderboardConfig{
			Driver: leaderboard.DriverNone,
			Limit:  leaderboard.DefaultLimit,
		},
	}
}

// Path returns the config file location: $MATHQUEST_CONFIG, then
// $XDG_CONFIG_HOME/mathquest/config.yaml, then ~/.config/mathquest/config.yaml.
func Path() (string, error) {
	if p := os.Getenv("MATHQUEST_CONFIG"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mathquest", "config.yaml"), nil
}

// Load reads path, layers environment overrides on top and validates the
// result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Database.Path, "MATHQUEST_DB")
	set(&c.Language, "MATHQUEST_LANG")
	set(&c.Leaderboard.Driver, "MATHQUEST_LEADERBOARD_DRIVER")
	set(&c.Leaderboard.DSN, "MATHQUEST_LEADERBOARD_DSN")
	set(&c.LLM.Provider, "MATHQUEST_LLM_PROVIDER")
	set(&c.LLM.Model, "MATHQUEST_LLM_MODEL")
	set(&c.LLM.AnthropicKey, "ANTHROPIC_API_KEY")
	set(&c.LLM.OpenAIKey, "OPENAI_API_KEY")
	set(&c.LLM.GeminiKey, "GEMINI_API_KEY")
}

// Validate normalizes enumerations and rejects values the game cannot use.
func (c *Config) Validate() error {
	c.Language = string(i18n.Parse(c.Language))
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Leaderboard.Driver = strings.ToLower(c.Leaderboard.Driver)

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	switch c.Leaderboard.Driver {
	case "", leaderboard.DriverNone, leaderboard.DriverMemory:
	case leaderboard.DriverSQLite, leaderboard.DriverPostgres, leaderboard.DriverMySQL:
		if c.Leaderboard.DSN == "" {
			return fmt.Errorf("leaderboard.dsn is required for the %s driver", c.Leaderboard.Driver)
		}
	default:
		return fmt.Errorf("unknown leaderboard driver %q", c.Leaderboard.Driver)
	}
	if c.Leaderboard.Limit <= 0 {
		c.Leaderboard.Limit = leaderboard.DefaultLimit
	}

	if c.Game.ReadyDelay < 0 || c.Game.FeedbackDelay < 0 {
		return fmt.Errorf("game delays must not be negative")
	}
	return nil
}

// Lang returns the configured display language.
func (c *Config) Lang() i18n.Lang {
	return i18n.Parse(c.Language)
}

// Timing returns the session timing with the configured delays.
func (c *Config) Timing() session.Timing {
	t := session.DefaultTiming()
	t.ReadyDelay = c.Game.ReadyDelay
	t.FeedbackDelay = c.Game.FeedbackDelay
	return t
}
