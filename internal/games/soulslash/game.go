// Package soulslash implements Soul Slash: a hero in an arena slashes
// demons that keep spawning at the edges until it wins or its soul is taken.
package soulslash

import (
	"time"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Win at the configured score
	ModeEndless                  // Survive as long as possible
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Sim to the fixed-tick platform loop. It owns the game
// clock, pause and the transient effects.
type Game struct {
	mode   GameMode
	preset config.DifficultyPreset // Overrides the CLI preset when set

	runtime core.RuntimeConfig
	cfg     config.SoulSlashConfig
	cfgErr  error
	sim     *Sim

	clock     time.Duration
	tick      time.Duration
	tickCount int
	paused    bool

	// Effects, driven by timers on the game clock
	timers     core.Timers
	slashFx    bool
	slashTimer core.TimerID
	shaking    bool
	shakeTimer core.TimerID

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Soul Slash game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Soul Slash game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "soulslash_endless"
	}
	return "soulslash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Soul Slash (Endless)"
	}
	return "Soul Slash"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSoulSlash(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultSoulSlashConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplySoulSlashPreset(&cfg, preset)
	}
	if g.mode == ModeEndless {
		cfg.Combat.WinScore = 0
	}
	g.ResetWith(runtime, cfg)
}

// SetDifficulty picks a preset for this instance only. Hosts serving
// several players use it instead of SetDifficultyPreset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// ResetWith starts a session with an explicit configuration instead of
// loading one.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.SoulSlashConfig) {
	g.runtime = runtime
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tick = time.Second / time.Duration(tickRate)
	g.clock = 0
	g.tickCount = 0
	g.paused = false

	g.timers.Reset()
	g.slashFx = false
	g.shaking = false

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.sim = NewSim(cfg, runtime.Seed)
}

// ConfigError returns the error from the last config load, if any.
// The game falls back to defaults when it is set.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Sim exposes the running session.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Pause only applies to a running session
	if in.Has(core.ActionPause) && g.sim.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.clock += g.tick

	res := g.sim.Step(in, g.clock)
	g.applyEvents(res.Events)
	g.timers.Fire(g.clock)

	res.State = g.State()
	return res
}

// applyEvents starts the visual effects the tick asked for.
func (g *Game) applyEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Type {
		case core.EventSlash:
			if !g.runtime.Caps.Effects {
				continue
			}
			g.timers.Cancel(g.slashTimer)
			g.slashFx = true
			g.slashTimer = g.timers.After(g.clock, g.cfg.Combat.SlashEffect(), func() {
				g.slashFx = false
			})
		case core.EventHeroHit:
			if !g.runtime.Caps.Shake {
				continue
			}
			g.timers.Cancel(g.shakeTimer)
			g.shaking = true
			g.shakeTimer = g.timers.After(g.clock, g.cfg.Combat.HitShake(), func() {
				g.shaking = false
			})
		case core.EventRestart:
			g.timers.Reset()
			g.slashFx = false
			g.shaking = false
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.State()
	st.Paused = g.paused
	return st
}

// Paused reports whether the game clock is stopped.
func (g *Game) Paused() bool {
	return g.paused
}

// SlashEffectActive reports whether the slash ring should be drawn.
func (g *Game) SlashEffectActive() bool {
	return g.slashFx
}

// Shaking reports whether the hit shake is running.
func (g *Game) Shaking() bool {
	return g.shaking
}

// TickCount returns the number of simulated ticks since Reset.
func (g *Game) TickCount() int {
	return g.tickCount
}

// Elapsed returns how long the current session has run on the game clock.
func (g *Game) Elapsed() time.Duration {
	if g.sim == nil {
		return 0
	}
	return g.sim.Elapsed()
}

// Resize adapts the drawing area without restarting the session.
// The arena is in its own units, so only the layout changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Runtime returns the runtime configuration the game was reset with.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.runtime
}

func init() {
	registry.Register("soulslash", func() registry.Game {
		return New()
	})
	registry.Register("soulslash_endless", func() registry.Game {
		return NewEndless()
	})
}
