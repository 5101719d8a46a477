// Package config handles burnish configuration.
package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HartBrook/burnish/internal/errors"
)

// Config represents the burnish configuration file. Every field is
// optional; burnish runs fine without a config file at all.
type Config struct {
	Version int `yaml:"version"`

	// Model is the tier that performs enhancement rewrites.
	// Empty means the built-in default.
	Model string `yaml:"model,omitempty"`

	// LogFile is where run logs are appended.
	LogFile string `yaml:"log_file,omitempty"`
}

// Default values.
const (
	DefaultVersion = 1
	DefaultLogFile = "burnish.log"
)

// Load reads config from the default location. A missing file is not
// an error: defaults are returned so burnish works unconfigured.
func Load() (*Config, error) {
	paths := NewPaths()
	if _, err := os.Stat(paths.ConfigFile); os.IsNotExist(err) {
		cfg := &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, "failed to marshal config", "", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	if c.Version != DefaultVersion {
		return errors.New(errors.ErrInvalidConfig,
			"unsupported config version",
			"Set version: 1 in your config file")
	}
	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// SetupLogging sends the standard logger to an append-only file so
// normal console output stays clean. The caller closes the file.
func SetupLogging(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
