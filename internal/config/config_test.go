package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SoulSlashConfig
	if err := yaml.Unmarshal(GetDefaultYAML("soulslash"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultSoulSlashConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", fromYAML, DefaultSoulSlashConfig())
	}
	if err := fromYAML.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadSoulSlashCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("hero:\n  max_health: 9\ncombat:\n  win_score: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSoulSlash(path)
	if err != nil {
		t.Fatalf("LoadSoulSlash() failed: %v", err)
	}
	if cfg.Hero.MaxHealth != 9 || cfg.Combat.WinScore != 50 {
		t.Errorf("overrides not applied: health=%d win=%d", cfg.Hero.MaxHealth, cfg.Combat.WinScore)
	}
	// Untouched fields keep their defaults
	if cfg.Hero.Speed != 240 || cfg.Spawn.BaseIntervalMS != 1400 {
		t.Errorf("defaults lost: speed=%g base=%d", cfg.Hero.Speed, cfg.Spawn.BaseIntervalMS)
	}
}

func TestLoadSoulSlashErrors(t *testing.T) {
	if _, err := LoadSoulSlash(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  base_interval_ms: 100\n  min_interval_ms: 450\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSoulSlash(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SoulSlashConfig)
	}{
		{"zero arena", func(c *SoulSlashConfig) { c.Arena.Width = 0 }},
		{"no margin", func(c *SoulSlashConfig) { c.Arena.SpawnMargin = 0 }},
		{"zero hero speed", func(c *SoulSlashConfig) { c.Hero.Speed = 0 }},
		{"zero health", func(c *SoulSlashConfig) { c.Hero.MaxHealth = 0 }},
		{"negative drag", func(c *SoulSlashConfig) { c.Hero.Drag = -1 }},
		{"start outside", func(c *SoulSlashConfig) { c.Hero.StartX = 1.5 }},
		{"no slash", func(c *SoulSlashConfig) { c.Combat.SlashRadius = 0 }},
		{"floor above base", func(c *SoulSlashConfig) { c.Spawn.MinIntervalMS = 2000 }},
		{"no milestone", func(c *SoulSlashConfig) { c.Spawn.MilestoneEvery = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSoulSlashConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSoulSlashConfig()
	ApplySoulSlashPreset(&cfg, DifficultyHard)
	if cfg.Hero.MaxHealth != 3 || cfg.Spawn.BaseIntervalMS != 1200 || cfg.Enemy.Speed != 150 {
		t.Errorf("hard preset not applied: %+v", cfg)
	}

	cfg = DefaultSoulSlashConfig()
	ApplySoulSlashPreset(&cfg, DifficultyFixed)
	if cfg.Spawn.RampEnabled {
		t.Error("fixed preset should disable the ramp")
	}

	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse")
	}
}

func TestSpawnRampSpeedsUpEveryFiveKills(t *testing.T) {
	ramp := NewSpawnRamp(DefaultSoulSlashConfig().Spawn)
	if ramp.Interval() != 1400*time.Millisecond {
		t.Fatalf("start interval = %v, expected 1400ms", ramp.Interval())
	}

	for score := 1; score <= 5; score++ {
		ramp.OnScore(score)
	}
	if ramp.Interval() != 1280*time.Millisecond {
		t.Errorf("interval at score 5 = %v, expected 1280ms", ramp.Interval())
	}

	for score := 6; score <= 50; score++ {
		ramp.OnScore(score)
	}
	if ramp.Interval() != 450*time.Millisecond {
		t.Errorf("interval at score 50 = %v, expected floor 450ms", ramp.Interval())
	}

	// Idempotent at the floor
	if ramp.OnScore(55) {
		t.Error("OnScore at the floor should report no change")
	}
	if ramp.Interval() != 450*time.Millisecond {
		t.Errorf("interval moved below floor: %v", ramp.Interval())
	}
}

func TestSpawnRampStepFunction(t *testing.T) {
	ramp := NewSpawnRamp(DefaultSoulSlashConfig().Spawn)
	prev := ramp.IntervalFor(0)

	for score := 1; score <= 100; score++ {
		stepped := ramp.OnScore(score)
		got := ramp.IntervalFor(score)

		if got != ramp.Interval() {
			t.Fatalf("score %d: incremental %v != pure %v", score, ramp.Interval(), got)
		}
		if got > prev {
			t.Fatalf("score %d: interval increased from %v to %v", score, prev, got)
		}
		if got < prev && score%5 != 0 {
			t.Fatalf("score %d: interval dropped off a milestone", score)
		}
		if stepped != (got < prev) {
			t.Fatalf("score %d: OnScore reported %v but interval went %v -> %v", score, stepped, prev, got)
		}
		if got < ramp.Floor() {
			t.Fatalf("score %d: interval %v below floor", score, got)
		}
		prev = got
	}
}

func TestSpawnRampDisabled(t *testing.T) {
	cfg := DefaultSoulSlashConfig().Spawn
	cfg.RampEnabled = false
	ramp := NewSpawnRamp(cfg)

	if ramp.OnScore(5) {
		t.Error("disabled ramp should not step")
	}
	if ramp.IntervalFor(50) != 1400*time.Millisecond {
		t.Errorf("disabled ramp IntervalFor(50) = %v", ramp.IntervalFor(50))
	}
}
