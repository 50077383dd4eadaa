// Package config provides YAML-based game configuration loading and
// difficulty management for Soul Slash.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// SoulSlashConfig contains all configuration for the Soul Slash game.
type SoulSlashConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Hero   HeroConfig   `yaml:"hero"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Combat CombatConfig `yaml:"combat"`
	Spawn  SpawnConfig  `yaml:"spawn"`
}

// ArenaConfig defines the playfield in arena units.
type ArenaConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// HeroConfig defines hero movement and durability.
type HeroConfig struct {
	Speed     float64 `yaml:"speed"`
	MaxHealth int     `yaml:"max_health"`
	Radius    float64 `yaml:"radius"`
	Drag      float64 `yaml:"drag"`
	StartX    float64 `yaml:"start_x"` // Fraction of arena width
	StartY    float64 `yaml:"start_y"` // Fraction of arena height
}

// EnemyConfig defines demon parameters.
type EnemyConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// CombatConfig defines the slash and win condition.
type CombatConfig struct {
	SlashRadius   float64 `yaml:"slash_radius"`
	SlashEffectMS int     `yaml:"slash_effect_ms"`
	HitShakeMS    int     `yaml:"hit_shake_ms"`
	WinScore      int     `yaml:"win_score"` // 0 disables winning (endless)
}

// SpawnConfig defines the spawn timer and its difficulty ramp.
type SpawnConfig struct {
	BaseIntervalMS int  `yaml:"base_interval_ms"`
	StepMS         int  `yaml:"step_ms"`
	MinIntervalMS  int  `yaml:"min_interval_ms"`
	MilestoneEvery int  `yaml:"milestone_every"`
	RampEnabled    bool `yaml:"ramp_enabled"`
}

// SlashEffect returns how long the slash ring stays visible.
func (c CombatConfig) SlashEffect() time.Duration {
	return time.Duration(c.SlashEffectMS) * time.Millisecond
}

// HitShake returns how long the screen shakes after the hero is hit.
func (c CombatConfig) HitShake() time.Duration {
	return time.Duration(c.HitShakeMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c SoulSlashConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have positive size, got %gx%g", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Arena.SpawnMargin <= 0:
		return fmt.Errorf("%w: spawn_margin must be positive", ErrInvalidConfig)
	case c.Hero.Speed <= 0 || c.Enemy.Speed <= 0:
		return fmt.Errorf("%w: hero and enemy speed must be positive", ErrInvalidConfig)
	case c.Hero.MaxHealth <= 0:
		return fmt.Errorf("%w: max_health must be positive", ErrInvalidConfig)
	case c.Hero.Radius <= 0 || c.Enemy.Radius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.Hero.Drag < 0:
		return fmt.Errorf("%w: drag must not be negative", ErrInvalidConfig)
	case c.Hero.StartX < 0 || c.Hero.StartX > 1 || c.Hero.StartY < 0 || c.Hero.StartY > 1:
		return fmt.Errorf("%w: hero start must be a fraction of the arena", ErrInvalidConfig)
	case c.Combat.SlashRadius <= 0:
		return fmt.Errorf("%w: slash_radius must be positive", ErrInvalidConfig)
	case c.Combat.WinScore < 0:
		return fmt.Errorf("%w: win_score must not be negative", ErrInvalidConfig)
	case c.Spawn.MinIntervalMS <= 0:
		return fmt.Errorf("%w: min_interval_ms must be positive", ErrInvalidConfig)
	case c.Spawn.BaseIntervalMS < c.Spawn.MinIntervalMS:
		return fmt.Errorf("%w: base_interval_ms %d is below min_interval_ms %d",
			ErrInvalidConfig, c.Spawn.BaseIntervalMS, c.Spawn.MinIntervalMS)
	case c.Spawn.StepMS < 0:
		return fmt.Errorf("%w: step_ms must not be negative", ErrInvalidConfig)
	case c.Spawn.MilestoneEvery <= 0:
		return fmt.Errorf("%w: milestone_every must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
