// SPDX-License-Identifier: MIT

// Package config loads scranagg settings from defaults, an optional YAML file,
// SCRANAGG_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Layout values accepted by Config.Layout.
const (
	LayoutRow    = "row"
	LayoutColumn = "column"
)

// EnvPrefix prefixes every environment override, e.g. SCRANAGG_LOG_LEVEL.
const EnvPrefix = "SCRANAGG"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all settings of the command-line driver.
type Config struct {
	Threads int       `mapstructure:"threads"`
	Layout  string    `mapstructure:"layout"` // row or column
	Sparse  bool      `mapstructure:"sparse"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load builds the configuration. configPath may be empty; a missing file at a
// non-empty path is an error. flags may be nil; flags that were not set on the
// command line do not override file or environment values.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("threads", 1)
	v.SetDefault("layout", LayoutRow)
	v.SetDefault("sparse", false)
	v.SetDefault("log.level", "warn")
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"threads":   "threads",
	"layout":    "layout",
	"sparse":    "sparse",
	"log-level": "log.level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}

	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d: %w", c.Threads, ErrInvalidConfig)
	}
	if c.Layout != LayoutRow && c.Layout != LayoutColumn {
		return fmt.Errorf("layout must be %q or %q, got %q: %w", LayoutRow, LayoutColumn, c.Layout, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// NewLogger builds a production zap logger writing to stderr at the
// configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// RowPreferred reports whether the configured layout favours row traversal.
func (c *Config) RowPreferred() bool {
	return c.Layout == LayoutRow
}
