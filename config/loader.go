package config

import "fmt"

// Load builds the run configuration with priority: CLI flags > settings file > defaults.
// f must come from RegisterFlags on a flag set that has already been parsed.
func Load(f *Flags) (Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Settings file: --settings, else the first standard location found
	path := f.SettingsPath()
	if path == "" {
		path = FindSettingsFile()
	}
	if path != "" {
		fileCfg, err := LoadSettingsFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load settings file %s: %w", path, err)
		}
		cfg = fileCfg
	}

	// 3. Merge CLI flags (highest priority, overwrites everything)
	cfg.MergeFromFlags(f)

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
