package soulslash

import (
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/physics"
)

// Facing is the horizontal direction the hero looks. Presentation only.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Hero is the single player-controlled entity.
type Hero struct {
	Body      *physics.Body
	Health    int
	MaxHealth int
	Alive     bool
	Facing    Facing
}

// Pos returns the hero's centre.
func (h *Hero) Pos() core.Vec2 {
	return h.Body.Pos
}

// Enemy is a demon travelling in a straight line towards where the hero
// stood when it spawned.
type Enemy struct {
	ID    int // Spawn order within the session, starting at 1
	Body  *physics.Body
	Alive bool
}

// Pos returns the enemy's centre.
func (e *Enemy) Pos() core.Vec2 {
	return e.Body.Pos
}
