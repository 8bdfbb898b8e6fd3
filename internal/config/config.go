// Package config loads tabcat settings from a YAML file.
//
// Example file:
//
//	format: table
//	log_level: debug
//	max_files: 200
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vegasq/tabcat/internal/output"
	"github.com/vegasq/tabcat/internal/reader"
)

// DefaultPath is read when no config file is named explicitly
const DefaultPath = ".tabcat.yaml"

// Config holds the settings flags can override
type Config struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	MaxFiles int    `yaml:"max_files"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Format:   output.FormatTSV,
		LogLevel: "warn",
		MaxFiles: reader.DefaultMaxFiles,
	}
}

// Load reads the YAML file at path over the defaults. When required is
// false a missing file is not an error and the defaults are returned.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every setting has a usable value
func (c *Config) Validate() error {
	if !output.IsFormat(c.Format) {
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	if c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive, got %d", c.MaxFiles)
	}
	return nil
}
