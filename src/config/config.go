package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration for the bridge.
type Config struct {
	Script *ScriptConfig `yaml:"script"`
}

// ScriptConfig carries the per-capability feature flags for the embedded
// script provider. A disabled capability answers with an empty result and
// never reaches the engine.
type ScriptConfig struct {
	Diagnostics bool `yaml:"diagnostics"`
	Hover       bool `yaml:"hover"`
	Symbols     bool `yaml:"symbols"`
	Completions bool `yaml:"completions"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateDefaultConfig generates a default configuration file
func GenerateDefaultConfig(path string) error {
	return SaveConfig(GetDefaultConfig(), path)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Script == nil {
		return fmt.Errorf("script configuration is required")
	}
	return nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".script-bridge", "config.yaml")
}

// GetDefaultConfig returns the default configuration with every
// capability enabled.
func GetDefaultConfig() *Config {
	return &Config{
		Script: &ScriptConfig{
			Diagnostics: true,
			Hover:       true,
			Symbols:     true,
			Completions: true,
		},
	}
}
