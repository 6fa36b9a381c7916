package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadSettingsFile loads ambient settings from a YAML or TOML file on top of
// the defaults. Files ending in .toml are read as TOML, everything else as
// YAML.
func LoadSettingsFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse settings file: %w", err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return cfg, nil
}

// SettingsLocations returns the paths searched for a settings file, in order.
func SettingsLocations() []string {
	locations := []string{
		"./splitter.yaml",
		"./splitter.yml",
		"./splitter.toml",
	}

	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".splitter", "config.yaml"),
			filepath.Join(home, ".splitter", "config.yml"),
			filepath.Join(home, ".splitter", "config.toml"),
		)
	}
	return locations
}

// FindSettingsFile searches for a settings file in standard locations
// Returns empty string if not found (non-fatal)
func FindSettingsFile() string {
	for _, path := range SettingsLocations() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
