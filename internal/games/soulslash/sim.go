package soulslash

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/physics"
)

// Sim is one Soul Slash session: the hero, the demons, score and the
// spawn timer. It is advanced by Step and never touches the host.
type Sim struct {
	cfg     config.SoulSlashConfig
	rng     *rand.Rand
	world   *physics.World
	spawner *Spawner
	ramp    *config.SpawnRamp
	gate    Gate

	hero    Hero
	enemies []*Enemy // Spawn order; only live enemies
	nextID  int

	score      int
	now        time.Duration
	startedAt  time.Duration
	lastSpawn  time.Duration
	slashHeld  bool
	cullMargin float64

	events []core.Event
}

// NewSim creates a session that starts at time zero.
func NewSim(cfg config.SoulSlashConfig, seed int64) *Sim {
	margin := cfg.Arena.SpawnMargin
	reach := margin + cfg.Enemy.Radius

	//#nosec G404 -- gameplay randomness
	rng := rand.New(rand.NewSource(seed))

	s := &Sim{
		cfg:        cfg,
		rng:        rng,
		world:      physics.NewWorld(cfg.Arena.Width, cfg.Arena.Height, 3*reach),
		spawner:    NewSpawner(rng, cfg.Arena.Width, cfg.Arena.Height, margin, cfg.Enemy.Speed),
		ramp:       config.NewSpawnRamp(cfg.Spawn),
		cullMargin: 2 * reach,
	}
	s.Reset(0)
	return s
}

// Reset re-initialises the session as if it started at now.
func (s *Sim) Reset(now time.Duration) {
	s.world.Clear()
	s.hero = Hero{
		Body: &physics.Body{
			Pos:                core.V(s.cfg.Arena.Width*s.cfg.Hero.StartX, s.cfg.Arena.Height*s.cfg.Hero.StartY),
			Radius:             s.cfg.Hero.Radius,
			Drag:               s.cfg.Hero.Drag,
			CollideWorldBounds: true,
		},
		Health:    s.cfg.Hero.MaxHealth,
		MaxHealth: s.cfg.Hero.MaxHealth,
		Alive:     true,
		Facing:    FacingRight,
	}
	s.world.SetHero(s.hero.Body)

	s.enemies = nil
	s.nextID = 0
	s.score = 0
	s.ramp.Reset()
	s.gate = NewGate(s.cfg.Combat.WinScore)
	s.now = now
	s.startedAt = now
	s.lastSpawn = now
	s.events = nil
}

// Step advances the session to now using the held input.
func (s *Sim) Step(in core.InputFrame, now time.Duration) core.StepResult {
	s.events = nil
	dt := max(now-s.now, 0)
	s.now = now

	slash := in.Has(core.ActionSlash)
	pressed := slash && !s.slashHeld
	s.slashHeld = slash

	if s.gate.Over() {
		s.stepOver(in)
		return s.result()
	}

	// Movement
	dirs := DirectionsFrom(in)
	s.hero.Body.Vel = HeroVelocity(dirs, s.cfg.Hero.Speed)
	s.hero.Facing = FacingFor(dirs, s.hero.Facing)

	// Physics, then overlaps in the order the world reports them
	s.world.Step(dt)
	s.resolveCollisions()

	if pressed && s.gate.Playing() {
		s.Slash()
	}

	s.cullEscaped()

	if s.gate.Playing() && Due(now, s.lastSpawn, s.ramp.Interval()) {
		s.spawn()
		s.lastSpawn = now
	}

	return s.result()
}

// stepOver handles the only inputs accepted after the session ended.
func (s *Sim) stepOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		s.Restart()
	case in.Has(core.ActionBack):
		s.gate.Quit()
	}
}

// Restart starts a fresh session from a finished one. It does nothing while playing.
func (s *Sim) Restart() bool {
	if !s.gate.Over() {
		return false
	}
	s.Reset(s.now)
	s.emit(core.EventRestart, 0)
	return true
}

func (s *Sim) spawn() {
	pos, _ := s.spawner.Point()
	s.nextID++
	e := &Enemy{
		ID: s.nextID,
		Body: &physics.Body{
			Pos:    pos,
			Vel:    s.spawner.Aim(pos, s.hero.Pos()),
			Radius: s.cfg.Enemy.Radius,
		},
		Alive: true,
	}
	s.world.Add(e.Body)
	s.enemies = append(s.enemies, e)
	s.emit(core.EventSpawn, e.ID)
}

// cullEscaped drops demons that missed the hero and can never come back.
// The hero stays inside the arena, so a culled demon could never touch it.
func (s *Sim) cullEscaped() {
	for _, b := range s.world.Escaped(s.cullMargin) {
		if e := s.enemyFor(b); e != nil {
			s.removeEnemy(e)
		}
	}
}

func (s *Sim) enemyFor(b *physics.Body) *Enemy {
	for _, e := range s.enemies {
		if e.Body == b {
			return e
		}
	}
	return nil
}

// removeEnemy takes an enemy out of play. Removing it twice is a no-op.
func (s *Sim) removeEnemy(e *Enemy) {
	if !e.Alive {
		return
	}
	e.Alive = false
	s.world.Remove(e.Body)
	for i, o := range s.enemies {
		if o == e {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			break
		}
	}
}

// end freezes every body and reports the outcome.
func (s *Sim) end() {
	s.world.Freeze()
	s.emit(core.EventGameOver, int(s.gate.Phase().Outcome()))
}

func (s *Sim) emit(t core.EventType, v int) {
	s.events = append(s.events, core.Event{Type: t, Value: v})
}

func (s *Sim) result() core.StepResult {
	return core.StepResult{
		State:  s.State(),
		Events: s.events,
	}
}

// State returns the platform view of the session.
func (s *Sim) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Health:   max(s.hero.Health, 0),
		GameOver: s.gate.Over(),
		Outcome:  s.gate.Phase().Outcome(),
		Ended:    s.gate.Quitting(),
	}
}

// Hero returns the hero.
func (s *Sim) Hero() *Hero {
	return &s.hero
}

// Enemies returns the live demons in spawn order.
func (s *Sim) Enemies() []*Enemy {
	return s.enemies
}

// Score returns the number of demons slain this session.
func (s *Sim) Score() int {
	return s.score
}

// Interval returns the current spawn interval.
func (s *Sim) Interval() time.Duration {
	return s.ramp.Interval()
}

// Phase returns the gate phase.
func (s *Sim) Phase() Phase {
	return s.gate.Phase()
}

// Now returns the time of the last step.
func (s *Sim) Now() time.Duration {
	return s.now
}

// Elapsed returns how long the current session has been running.
func (s *Sim) Elapsed() time.Duration {
	return s.now - s.startedAt
}

// Config returns the configuration the session runs with.
func (s *Sim) Config() config.SoulSlashConfig {
	return s.cfg
}
