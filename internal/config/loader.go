package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadShmup when no file was found.
const SourceEmbedded = "embedded"

// LoadShmup loads the shooter configuration and reports where it came from.
// Search order: customPath -> ~/.shmup/configs/shmup.yaml -> ./configs/shmup.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an error;
// broken files found by the search are skipped.
func LoadShmup(customPath string) (ShmupConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShmupConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseShmup(data)
		if err != nil {
			return ShmupConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("shmup.yaml"), filepath.Join("configs", "shmup.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseShmup(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseShmup(defaultShmupYAML)
	if err != nil {
		return DefaultShmupConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseShmup decodes YAML over the default configuration and validates it.
func parseShmup(data []byte) (ShmupConfig, error) {
	cfg := DefaultShmupConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShmupConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ShmupConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shmup", "configs", filename)
}

// ApplyShmupPreset adjusts the session rules for a difficulty preset.
// Normal leaves the loaded configuration untouched.
func ApplyShmupPreset(cfg *ShmupConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Mobs.Count = 6
		cfg.Mobs.DriftY.Max = 6
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.Shield = 80
		cfg.Mobs.Count = 12
	}
}

// ApplyClassicRules turns the configuration into the one-hit variant:
// any contact with a mob ends the session.
func ApplyClassicRules(cfg *ShmupConfig) {
	cfg.Player.Lives = 1
	cfg.Player.Shield = 1
}
