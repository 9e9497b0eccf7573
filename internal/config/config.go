// Package config loads basketmine defaults from the user config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds mining defaults. Command-line flags override these values.
type Config struct {
	// MinSupport is the default minimum support ratio in (0, 1].
	MinSupport float64

	// MinConfidence is the default minimum rule confidence in (0, 1].
	MinConfidence float64

	// Delimiter separates item fields in dataset files.
	Delimiter string

	// IndexColumn marks datasets whose first field is a transaction
	// sequence number.
	IndexColumn bool
}

// Defaults returns the shipped defaults, used when no config file exists.
func Defaults() *Config {
	return &Config{
		MinSupport:    0.01,
		MinConfidence: 0.5,
		Delimiter:     ",",
		IndexColumn:   true,
	}
}

// Dir returns the basketmine config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/basketmine if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "basketmine"), nil
}

// Load reads {dir}/config.yaml and returns the merged config. A missing
// file yields the shipped defaults without an error; a malformed file or
// out-of-range threshold is an error.
func Load(dir string) (*Config, error) {
	def := Defaults()

	v := viper.New()
	v.SetDefault("minsup", def.MinSupport)
	v.SetDefault("minconf", def.MinConfidence)
	v.SetDefault("delimiter", def.Delimiter)
	v.SetDefault("index_column", def.IndexColumn)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		MinSupport:    v.GetFloat64("minsup"),
		MinConfidence: v.GetFloat64("minconf"),
		Delimiter:     v.GetString("delimiter"),
		IndexColumn:   v.GetBool("index_column"),
	}

	if cfg.MinSupport <= 0 || cfg.MinSupport > 1 {
		return nil, fmt.Errorf("config: minsup must be in (0, 1], got %v", cfg.MinSupport)
	}
	if cfg.MinConfidence <= 0 || cfg.MinConfidence > 1 {
		return nil, fmt.Errorf("config: minconf must be in (0, 1], got %v", cfg.MinConfidence)
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = def.Delimiter
	}
	return cfg, nil
}
