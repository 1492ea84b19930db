// Package config holds the runtime settings of the explorer.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "POPEXPLORER_"

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `koanf:"addr"`
	// DataPath points to a TSV file. Empty means the embedded snapshot.
	DataPath string `koanf:"data"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// DefaultTopN is used when a request does not say how many countries to rank.
	DefaultTopN int `koanf:"top_n"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		DefaultTopN:     5,
	}
}

// FromEnv returns Default overridden by POPEXPLORER_* variables.
// Blank variables are ignored. A value that does not parse is an error.
func FromEnv() (Config, error) {
	c := Default()

	k := koanf.New(".")
	provider := env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		value = strings.TrimSpace(value)
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	})
	if err := k.Load(provider, nil); err != nil {
		return c, fmt.Errorf("load environment: %w", err)
	}
	if err := k.Unmarshal("", &c); err != nil {
		return Default(), fmt.Errorf("parse %s* environment: %w", EnvPrefix, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is empty")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.DefaultTopN < 0 {
		return fmt.Errorf("default top n must not be negative, got %d", c.DefaultTopN)
	}
	return nil
}

// SlogLevel converts LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
