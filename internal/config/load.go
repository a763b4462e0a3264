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
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

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
		return filepath.Join(home, "Library", "Application Support", "HikeSim")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "HikeSim")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "hikesim")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "hikesim")
	}
}

// loadFromFile merges a YAML file into cfg. Keys absent from the file
// keep their current values; a bindings map in the file replaces only the
// actions it names.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	defaults := cfg.Input.Bindings
	cfg.Input.Bindings = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg.Input.Bindings = defaults
		return err
	}

	merged := make(map[string]string, len(defaults))
	for action, key := range defaults {
		merged[action] = key
	}
	for action, key := range cfg.Input.Bindings {
		merged[action] = key
	}
	cfg.Input.Bindings = merged
	return nil
}
