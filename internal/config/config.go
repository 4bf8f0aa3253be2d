package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the top-level application configuration.
type Config struct {
	Server    ServerConfig              `yaml:"server"`
	Database  DatabaseConfig            `yaml:"database"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Generate  GenerateConfig            `yaml:"generate"`
	Positions PositionsConfig           `yaml:"positions"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig holds database connection settings. A database is only
// required when the positions backend is "postgres".
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ProviderConfig holds AI provider settings.
type ProviderConfig struct {
	Type   string `yaml:"type"`    // e.g. "openai"
	URL    string `yaml:"url"`     // base URL
	APIKey string `yaml:"api_key"` // API key
}

// GenerateConfig selects the provider and model used for graph generation.
type GenerateConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// PositionsConfig selects the layout-position cache backend.
// Backend is one of "memory", "file", or "postgres".
type PositionsConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"` // base directory for the file backend
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Providers: map[string]ProviderConfig{},
		Generate: GenerateConfig{
			Model: "gpt-4o",
		},
		Positions: PositionsConfig{
			Backend: "file",
			Dir:     "data/positions",
		},
	}
}

// Load reads a YAML configuration file at path and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Ensure Providers map is never nil even if YAML has "providers: {}" or omits it.
	if cfg.Providers == nil {
		cfg.Providers = map[string]ProviderConfig{}
	}

	return cfg, nil
}

// LoadDefault tries to load "config.yaml" from the current directory.
// If the file does not exist, it returns sensible defaults.
// Any other error (e.g. permission denied, malformed YAML) is returned.
func LoadDefault() (*Config, error) {
	cfg, err := Load("config.yaml")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}
