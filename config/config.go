// Package config provides configuration loading for the annotopia-vocab tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/annotopia/vocabularies/catalog"
	"github.com/annotopia/vocabularies/export"
	"gopkg.in/yaml.v3"
)

// Config represents the complete tool configuration
type Config struct {
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// ExportConfig configures RDF export of the vocabulary
type ExportConfig struct {
	// Format is the serialization format (turtle, ntriples, jsonld)
	Format string `yaml:"format"`
	// Profile selects which term annotations are emitted (minimal, full)
	Profile string `yaml:"profile"`
	// BaseIRI is passed to the serializer for relative references
	BaseIRI string `yaml:"base_iri"`
	// Groups restricts the export to the listed groups (empty = all)
	Groups []string `yaml:"groups"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Format:  string(export.FormatTurtle),
			Profile: string(export.ProfileFull),
			BaseIRI: export.DefaultBaseIRI,
			Groups:  nil, // All groups
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		errs = append(errs, fmt.Errorf("export.format: %w", err))
	}
	if _, err := export.ParseProfile(c.Export.Profile); err != nil {
		errs = append(errs, fmt.Errorf("export.profile: %w", err))
	}
	for _, g := range c.Export.Groups {
		if _, err := catalog.ParseGroup(g); err != nil {
			errs = append(errs, fmt.Errorf("export.groups: %w", err))
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// Options converts the export settings to exporter options
func (e ExportConfig) Options() (export.Options, error) {
	format, err := export.ParseFormat(e.Format)
	if err != nil {
		return export.Options{}, err
	}
	profile, err := export.ParseProfile(e.Profile)
	if err != nil {
		return export.Options{}, err
	}

	groups := make([]catalog.Group, 0, len(e.Groups))
	for _, name := range e.Groups {
		g, err := catalog.ParseGroup(name)
		if err != nil {
			return export.Options{}, err
		}
		groups = append(groups, g)
	}

	return export.Options{
		Format:  format,
		Profile: profile,
		BaseIRI: e.BaseIRI,
		Groups:  groups,
	}, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Export
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Profile != "" {
		c.Export.Profile = other.Export.Profile
	}
	if other.Export.BaseIRI != "" {
		c.Export.BaseIRI = other.Export.BaseIRI
	}
	if len(other.Export.Groups) > 0 {
		c.Export.Groups = other.Export.Groups
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
