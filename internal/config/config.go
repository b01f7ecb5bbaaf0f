// Package config loads the crontab CLI configuration from TOML.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/common/validation"
)

// Config is the CLI configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Redis   RedisConfig   `toml:"redis"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LogConfig selects log level and format.
type LogConfig struct {
	Level  string `toml:"level"`  // trace, debug, info, warn, error
	Format string `toml:"format"` // console, json
}

// RedisConfig locates the store used by the store subcommands.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
}

// MetricsConfig controls parser instrumentation.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Namespace string `toml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "crontab:entries",
		},
		Metrics: MetricsConfig{
			Namespace: "crontab",
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
// ${VAR} references in the Redis password are expanded from the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Redis.Password = os.ExpandEnv(cfg.Redis.Password)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return cterrors.NewValidationError("config", "log.format", c.Log.Format, "unknown format").
			WithHint("use console or json")
	}
	if err := validation.ValidateNotEmpty("config", "redis.addr", c.Redis.Addr); err != nil {
		return err
	}
	if err := validation.ValidateNotEmpty("config", "redis.key", c.Redis.Key); err != nil {
		return err
	}
	if c.Redis.DB < 0 {
		return cterrors.NewValidationError("config", "redis.db", c.Redis.DB, "cannot be negative")
	}
	return nil
}
