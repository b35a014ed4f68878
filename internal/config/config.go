// Package config reads and writes ~/.prodlist/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Config is the client configuration.
type Config struct {
	// ServerURL is the base URL of the catalog server.
	ServerURL string `yaml:"server_url"`
	// Currency is the suffix used when formatting amounts.
	Currency string `yaml:"currency,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		ServerURL: "http://localhost:8000",
		Currency:  "€",
	}
}

// Dir returns the prodlist config directory, ~/.prodlist.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".prodlist"
	}
	return filepath.Join(home, ".prodlist")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file. A missing file is not an error — defaults are
// returned so first runs work against a local server.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Currency == "" {
		cfg.Currency = Default().Currency
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes a config file to an explicit path.
func SaveTo(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
