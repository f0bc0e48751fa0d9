package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSweeper loads the Minesweeper configuration.
// Search order: customPath -> ~/.sweeper/configs/sweeper.yaml -> ./configs/sweeper.yaml -> embedded default.
// Files only need the keys they change; missing keys keep their defaults.
func LoadSweeper(customPath string) (SweeperConfig, error) {
	base := embeddedSweeper()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("sweeper.yaml"), filepath.Join("configs", "sweeper.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedSweeper parses the embedded default YAML.
func embeddedSweeper() SweeperConfig {
	cfg := DefaultSweeperConfig()
	if err := yaml.Unmarshal(defaultSweeperYAML, &cfg); err != nil {
		return DefaultSweeperConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}
