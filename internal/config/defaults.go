package config

import (
	_ "embed"
)

//go:embed defaults/soulslash.yaml
var defaultSoulSlashYAML []byte

// DefaultSoulSlashConfig returns the default Soul Slash configuration.
func DefaultSoulSlashConfig() SoulSlashConfig {
	return SoulSlashConfig{
		Arena: ArenaConfig{
			Width:       960,
			Height:      540,
			SpawnMargin: 40,
		},
		Hero: HeroConfig{
			Speed:     240,
			MaxHealth: 5,
			Radius:    24,
			Drag:      320,
			StartX:    0.2,
			StartY:    0.5,
		},
		Enemy: EnemyConfig{
			Speed:  120,
			Radius: 22,
		},
		Combat: CombatConfig{
			SlashRadius:   100,
			SlashEffectMS: 120,
			HitShakeMS:    150,
			WinScore:      30,
		},
		Spawn: SpawnConfig{
			BaseIntervalMS: 1400,
			StepMS:         120,
			MinIntervalMS:  450,
			MilestoneEvery: 5,
			RampEnabled:    true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "soulslash", "soulslash_endless":
		return defaultSoulSlashYAML
	default:
		return nil
	}
}
