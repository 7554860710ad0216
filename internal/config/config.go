// Package config handles scanner configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the scan workflow configuration. Values come from an
// optional .pinpoint.yml, overridden by PINPOINT_* environment variables.
type Config struct {
	// DBPath is where the scan index lives, relative to the scan root.
	DBPath string `envconfig:"PINPOINT_DB" yaml:"db_path"`

	// Languages restricts scanning to these canonical language names.
	// Empty means all supported languages.
	Languages []string `envconfig:"PINPOINT_LANGUAGES" yaml:"languages"`

	// Include and Exclude are doublestar glob patterns applied to
	// repo-relative paths. Include empty means everything.
	Include []string `envconfig:"PINPOINT_INCLUDE" yaml:"include"`
	Exclude []string `envconfig:"PINPOINT_EXCLUDE" yaml:"exclude"`

	// Workers bounds parallel file scanning. Zero means GOMAXPROCS.
	Workers int `envconfig:"PINPOINT_WORKERS" yaml:"workers"`

	// Log configures scanner logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `envconfig:"PINPOINT_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"PINPOINT_LOG_FORMAT" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DBPath: ".pinpoint/index.db",
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist), applies environment overrides, and validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("pinpoint", &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks glob patterns and numeric bounds.
func (c Config) Validate() error {
	for _, pattern := range append(append([]string{}, c.Include...), c.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}
