package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/wise4"
)

// Defaults.
const (
	DefaultLogFile      = "convert_log.txt"
	DefaultManifestFile = wise4.ManifestFile
	DefaultFetchTimeout = 10 * time.Second
)

// Data grid targets.
const (
	TargetTable     = "table"
	TargetDataGraph = "datagraph"
)

// Config is the migrator configuration.
type Config struct {
	// OutputDir is where project folders are created. Empty means next to
	// the archive.
	OutputDir    string `yaml:"output_dir,omitempty"`
	LogFile      string `yaml:"log_file"`
	ManifestFile string `yaml:"manifest_file"`
	Fetch        Fetch  `yaml:"fetch"`
	// DataGridTarget is TargetTable or TargetDataGraph.
	DataGridTarget string `yaml:"data_grid_target"`
	// LaunchBaseURL overrides the Pedagogica launcher of Concord steps.
	LaunchBaseURL string `yaml:"launch_base_url,omitempty"`
}

// Fetch configures image downloads.
type Fetch struct {
	// Enabled is a pointer so an explicit false survives defaulting.
	Enabled    *bool         `yaml:"enabled,omitempty"`
	Timeout    time.Duration `yaml:"timeout"`
	SourceHost string        `yaml:"source_host"`
	MirrorHost string        `yaml:"mirror_host"`
}

// IsEnabled reports whether images are downloaded.
func (f Fetch) IsEnabled() bool {
	return f.Enabled == nil || *f.Enabled
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}

	if c.ManifestFile == "" {
		c.ManifestFile = DefaultManifestFile
	}

	if c.Fetch.Timeout <= 0 {
		c.Fetch.Timeout = DefaultFetchTimeout
	}

	if c.Fetch.SourceHost == "" {
		c.Fetch.SourceHost = assets.DefaultSourceHost
	}

	if c.Fetch.MirrorHost == "" {
		c.Fetch.MirrorHost = assets.DefaultMirrorHost
	}

	if c.DataGridTarget == "" {
		c.DataGridTarget = TargetTable
	}
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.DataGridTarget {
	case TargetTable, TargetDataGraph:
	default:
		return fmt.Errorf("invalid data_grid_target %q: want %q or %q", c.DataGridTarget, TargetTable, TargetDataGraph)
	}

	return nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
