package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadHangman loads the hangman configuration.
// Search order: customPath -> ~/.hangman/configs/hangman.yaml -> ./configs/hangman.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadHangman(customPath string) (HangmanConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultHangmanConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultHangmanConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultHangmanConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hangman.yaml"); userCfgPath != "" {
		if cfg, ok := parseFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := parseFile(filepath.Join("configs", "hangman.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultHangmanConfig()
	if err := yaml.Unmarshal(defaultHangmanYAML, &cfg); err != nil {
		return DefaultHangmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads an optional config file; unreadable or invalid files are skipped.
func parseFile(path string) (HangmanConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HangmanConfig{}, false
	}
	cfg := DefaultHangmanConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HangmanConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangman", "configs", filename)
}

// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user/...", are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
