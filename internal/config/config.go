package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/session"
)

const envPrefix = "MINES_"

type Config struct {
	Size     int     `schema:"MINES_SIZE"`
	Density  float64 `schema:"MINES_DENSITY"`
	Seed     uint64  `schema:"MINES_SEED"`
	LogLevel string  `schema:"MINES_LOG_LEVEL"`
	LogFile  string  `schema:"MINES_LOG_FILE"`
	Nick     string  `schema:"MINES_NICK"`

	Development bool `schema:"-"`
}

func Default() *Config {
	return &Config{
		Size:     session.DefaultSize,
		Density:  session.DefaultDensity,
		LogLevel: "info",
		Nick:     "Anonymous",
	}
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return FromEnviron(os.Environ())
}

// FromEnviron reads the configuration from KEY=value pairs. Unset or empty
// MINES_* variables keep their defaults.
func FromEnviron(environ []string) (*Config, error) {
	values := make(url.Values)
	cfg := Default()
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == "DEVELOPMENT" {
			cfg.Development = value != "0"
			continue
		}
		if strings.HasPrefix(key, envPrefix) {
			values.Set(key, value)
		}
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(cfg, values); err != nil {
		return nil, fmt.Errorf("unable to decode %s* env variables: %w", envPrefix, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !session.ValidSize(c.Size) {
		return fmt.Errorf("MINES_SIZE must be one of %v, got %d", session.Presets, c.Size)
	}
	if c.Density <= 0 || c.Density >= 1 {
		return fmt.Errorf("MINES_DENSITY must be between 0 and 1, got %v", c.Density)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("MINES_LOG_LEVEL: %w", err)
	}
	return nil
}

// Level is the configured log level; development mode always logs debug.
func (c Config) Level() logrus.Level {
	if c.Development {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"size":        c.Size,
		"density":     c.Density,
		"seed":        c.Seed,
		"log_level":   c.LogLevel,
		"log_file":    c.LogFile,
		"nick":        c.Nick,
		"development": c.Development,
	}
}
