package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSoulSlash loads Soul Slash configuration.
// Search order: customPath -> ~/.soulslash/configs/soulslash.yaml -> ./configs/soulslash.yaml -> embedded default.
// Files are layered over the built-in defaults, so a partial file only overrides what it names.
func LoadSoulSlash(customPath string) (SoulSlashConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSoulSlashConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSoulSlash(data)
		if err != nil {
			return DefaultSoulSlashConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("soulslash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSoulSlash(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/soulslash.yaml"); err == nil {
		if cfg, err := parseSoulSlash(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSoulSlash(defaultSoulSlashYAML)
	if err != nil {
		return DefaultSoulSlashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSoulSlash decodes YAML over the defaults and validates the result.
func parseSoulSlash(data []byte) (SoulSlashConfig, error) {
	cfg := DefaultSoulSlashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".soulslash", "configs", filename)
}

// ApplySoulSlashPreset modifies the config based on a difficulty preset.
func ApplySoulSlashPreset(cfg *SoulSlashConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Spawn.RampEnabled = false
		return
	}
	cfg.Spawn.RampEnabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Hero.MaxHealth = 7
		cfg.Spawn.BaseIntervalMS = 1600
	case DifficultyHard:
		cfg.Hero.MaxHealth = 3
		cfg.Spawn.BaseIntervalMS = 1200
		cfg.Enemy.Speed = 150
	}
}
