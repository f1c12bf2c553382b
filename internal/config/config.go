// Package config layers flags, environment and an optional config file
// into the runtime configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/storage/jsonfile"
)

const (
	// AppName is the application directory and config file name.
	AppName = "todo"

	// EnvPrefix prefixes environment variables, e.g. TODO_FILE.
	EnvPrefix = "TODO"

	// DefaultLogLevel shows recovered storage problems but not debug traces.
	DefaultLogLevel = "warn"
)

// Configuration keys, also used as flag names.
const (
	KeyConfig   = "config"
	KeyFile     = "file"
	KeyLogLevel = "log-level"
	KeyColor    = "color"
)

// Config holds settings for one run.
type Config struct {
	// File is the storage file path. It must already exist.
	File string `mapstructure:"file"`

	// LogLevel is a zap level name or "none".
	LogLevel string `mapstructure:"log-level"`

	// Color is one of auto, always, never.
	Color string `mapstructure:"color"`
}

// RegisterFlags registers the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyFile, jsonfile.DefaultFile, "task storage file, must already exist")
	fs.String(KeyConfig, "", "config file (default $XDG_CONFIG_HOME/todo/todo.yaml)")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level: debug, info, warn, error or none")
	fs.String(KeyColor, output.ColorAuto, "color diagnostics: auto, always or never")
}

// NewViper returns a viper instance with defaults, environment binding and
// the flags in fs bound to their keys.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyFile, jsonfile.DefaultFile)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyColor, output.ColorAuto)
	v.SetDefault(KeyConfig, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// Load reads the optional config file and returns the validated Config.
// An explicitly named config file must exist; the default one may not.
func Load(v *viper.Viper) (*Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(AppName)
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return errors.New("invalid config: file must not be empty")
	}

	switch c.Color {
	case output.ColorAuto, output.ColorAlways, output.ColorNever:
	default:
		return fmt.Errorf("invalid config: color must be auto, always or never, got %q", c.Color)
	}

	if c.LogLevel != logging.LevelNone {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid config: log-level: %w", err)
		}
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
