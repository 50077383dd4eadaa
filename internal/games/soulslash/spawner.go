package soulslash

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// Edge is a side of the arena.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Spawner decides where demons appear and how they move.
type Spawner struct {
	rng           *rand.Rand
	width, height float64
	margin        float64
	speed         float64
}

// NewSpawner creates a spawner for an arena of the given size.
func NewSpawner(rng *rand.Rand, width, height, margin, speed float64) *Spawner {
	return &Spawner{
		rng:    rng,
		width:  width,
		height: height,
		margin: margin,
		speed:  speed,
	}
}

// Due reports whether enough time has passed since the last spawn.
func Due(now, lastSpawn, interval time.Duration) bool {
	return now-lastSpawn >= interval
}

// Point picks a uniformly random spot on one of the four edges, pushed
// margin units outside the arena.
func (sp *Spawner) Point() (core.Vec2, Edge) {
	edge := Edge(sp.rng.Intn(4))
	x := sp.rng.Float64() * sp.width
	y := sp.rng.Float64() * sp.height

	switch edge {
	case EdgeLeft:
		x = -sp.margin
	case EdgeRight:
		x = sp.width + sp.margin
	case EdgeTop:
		y = -sp.margin
	case EdgeBottom:
		y = sp.height + sp.margin
	}
	return core.V(x, y), edge
}

// Aim returns the velocity from a spawn point towards target at the spawner's speed.
func (sp *Spawner) Aim(from, target core.Vec2) core.Vec2 {
	return AimAt(from, target, sp.speed)
}

// AimAt returns a velocity of the given speed pointing from `from` to `target`.
// When the two points coincide the velocity points right (+x).
func AimAt(from, target core.Vec2, speed float64) core.Vec2 {
	dir, ok := target.Sub(from).Normalize()
	if !ok {
		dir = core.V(1, 0)
	}
	return dir.Scale(speed)
}
