package soulslash

import "github.com/vovakirdan/soul-slash/internal/core"

// Directions is the held state of the four movement keys.
type Directions struct {
	Up, Down, Left, Right bool
}

// DirectionsFrom extracts the movement keys from an input frame.
func DirectionsFrom(in core.InputFrame) Directions {
	return Directions{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// axis folds a pair of opposing keys into -1, 0 or 1.
func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}

// HeroVelocity maps held directions to a velocity. Opposing keys cancel,
// and diagonals are normalised so every moving direction has the same speed.
func HeroVelocity(d Directions, speed float64) core.Vec2 {
	dir := core.V(axis(d.Left, d.Right), axis(d.Up, d.Down))
	unit, ok := dir.Normalize()
	if !ok {
		return core.Vec2{}
	}
	return unit.Scale(speed)
}

// FacingFor returns the facing after applying horizontal input.
// Without horizontal movement the hero keeps looking the same way.
func FacingFor(d Directions, current Facing) Facing {
	switch axis(d.Left, d.Right) {
	case -1:
		return FacingLeft
	case 1:
		return FacingRight
	default:
		return current
	}
}
