package soulslash

import "github.com/vovakirdan/soul-slash/internal/core"

// Slash defeats every live demon within the slash radius of the hero and
// returns how many fell. Demons are visited in spawn order; once the
// session is over the remaining ones are left alone.
func (s *Sim) Slash() int {
	if !s.gate.Playing() {
		return 0
	}
	s.emit(core.EventSlash, len(s.enemies))

	hero := s.hero.Pos()
	targets := append([]*Enemy(nil), s.enemies...)
	killed := 0
	for _, e := range targets {
		if !s.gate.Playing() {
			break
		}
		if !e.Alive || core.Dist(hero, e.Pos()) > s.cfg.Combat.SlashRadius {
			continue
		}
		s.defeat(e)
		killed++
	}
	return killed
}

// defeat removes a slain demon and scores it.
func (s *Sim) defeat(e *Enemy) {
	if !e.Alive {
		return
	}
	s.removeEnemy(e)
	s.score++
	s.emit(core.EventDefeat, e.ID)

	if s.ramp.OnScore(s.score) {
		s.emit(core.EventRampDown, int(s.ramp.Interval().Milliseconds()))
	}
	if s.gate.CheckScore(s.score) {
		s.end()
	}
}

// resolveCollisions handles every demon touching the hero. Each one is
// destroyed and deals one damage.
func (s *Sim) resolveCollisions() {
	for _, b := range s.world.HeroOverlaps() {
		if !s.gate.Playing() {
			return
		}
		e := s.enemyFor(b)
		if e == nil {
			continue
		}
		s.HitHero(e)
	}
}

// HitHero applies a hero-demon collision. Inactive demons are ignored.
func (s *Sim) HitHero(e *Enemy) {
	if !s.gate.Playing() || !e.Alive {
		return
	}
	s.removeEnemy(e)
	s.hero.Health = max(s.hero.Health-1, 0)
	s.emit(core.EventHeroHit, s.hero.Health)

	if s.gate.CheckHealth(s.hero.Health) {
		s.hero.Alive = false
		s.end()
	}
}
