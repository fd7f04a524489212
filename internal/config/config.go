// Package config loads settings for the sortlist command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidDomain    = errors.New("invalid list domain")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Default configuration values.
const (
	DefaultDomain    = "int"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultColor     = true

	envPrefix = "SORTLIST"
)

// Config holds all configuration for the sortlist command.
type Config struct {
	// Domain is the kind of value lists hold: "int" or "string".
	Domain string `mapstructure:"domain"`
	// Locale selects string collation. Empty means the process locale.
	Locale  string        `mapstructure:"locale"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// New returns a viper instance with defaults and environment bindings set, ready for flags to
// be bound to it.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file at configPath, if any, into v and returns the validated result.
// With an empty configPath, sortlist.yaml is looked up in the working directory and in
// $HOME/.config/sortlist; a missing file is not an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sortlist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sortlist")
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := v.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validate(&cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("domain", DefaultDomain)
	v.SetDefault("locale", "")

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("output.color", DefaultColor)
}

func validate(cfg *Config) error {
	switch cfg.Domain {
	case "int", "string":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDomain, cfg.Domain)
	}

	if _, err := cfg.Logging.SlogLevel(); err != nil {
		return err
	}

	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Logging.Format)
	}

	return nil
}

// SlogLevel converts the configured level name to a slog.Level.
func (c LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Level)
	}
	return level, nil
}
