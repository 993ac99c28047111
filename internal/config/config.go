// Package config loads service configuration from file, environment, and
// defaults. Command-line flags in cmd/api take precedence over all of it.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for the service.
type Config struct {
	// Port is the network port the HTTP server listens on.
	Port int `mapstructure:"port" yaml:"port"`
	// Env names the operating environment (development, staging,
	// production, test).
	Env string `mapstructure:"env" yaml:"env"`
	// DataBase is where the CSV datasets live: a local directory or an
	// HTTP(S) base URL.
	DataBase string `mapstructure:"data_base" yaml:"data_base"`
	// LeagueID widens the liquidity dataset filename probe list when set.
	LeagueID string `mapstructure:"league_id" yaml:"league_id"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// Load loads configuration with precedence: env > config file > defaults.
// cfgFile may be empty, in which case only env and defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("KICKBOARD")
	v.AutomaticEnv()

	v.SetDefault("port", 4000)
	v.SetDefault("env", "development")
	v.SetDefault("data_base", "data")
	v.SetDefault("league_id", "")
	v.SetDefault("log_level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration to path as YAML.
func Save(c *Config, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SlogLevel maps the configured log level to its slog value. Unknown
// levels fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
