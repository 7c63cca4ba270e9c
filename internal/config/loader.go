package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName       = "race.yaml"
	localConfigDir = "configs"
)

// Load loads the race configuration.
// Search order: customPath -> ~/.turtlerace/race.yaml -> ./configs/race.yaml -> embedded default
//
// Files are decoded over Default(), so a file only needs the keys it
// changes. A custom path that cannot be read or parsed is an error; the
// other locations are skipped when missing or unreadable. Whatever is
// loaded must pass Validate.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(customPath, data)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(userCfgPath, data)
		}
	}

	// Try local configs directory
	localPath := filepath.Join(localConfigDir, fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		return parse(localPath, data)
	}

	// Use embedded default YAML
	cfg, err := parse("embedded default", defaultRaceYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turtlerace", filename)
}
