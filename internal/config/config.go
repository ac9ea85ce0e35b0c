// Package config resolves runtime settings for the sm2 CLI.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/abhisek/sm2/internal/logging"
)

// Config holds runtime configuration.
// Values are populated from .sm2.yaml, SM2_* env vars, and CLI flags.
type Config struct {
	// DB is the SQLite database path. Empty means store.DefaultDBPath.
	DB string `mapstructure:"db"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("db", "")
	viper.SetDefault("log_level", "warn")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("log_level: %w", err)
	}
	return cfg, nil
}
