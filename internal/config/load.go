package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Cloudview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Cloudview")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cloudview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cloudview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// The controls map is merged key by key so a file can override a single
// option.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	defaults := cfg.Controls
	cfg.Controls = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Controls = defaults
		return err
	}

	merged := make(map[string]any, len(defaults)+len(cfg.Controls))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range cfg.Controls {
		merged[k] = v
	}
	cfg.Controls = merged
	return nil
}
