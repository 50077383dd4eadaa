// Package physics is a small arcade-style physics substrate: velocity
// integration, per-axis drag, world-bounds clamping and overlap reports
// between one tracked body and a dynamic set of others.
package physics

import (
	"math"
	"sort"
	"time"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// cellSize is the resolv broadphase grid size in arena units.
const cellSize = 32

// tags let resolv filter which shapes to test against
var (
	tagHero  = resolv.NewTag("hero")
	tagOther = resolv.NewTag("other")
)

// BodyID identifies a body. IDs grow in insertion order.
type BodyID int

// Body is a circular physics body.
type Body struct {
	ID     BodyID
	Pos    core.Vec2 // Centre, arena units
	Vel    core.Vec2 // Units per second
	Radius float64

	// Drag is deceleration per axis in units per second squared.
	Drag float64

	// CollideWorldBounds keeps the whole circle inside the arena.
	CollideWorldBounds bool

	shape *resolv.Circle
}

// World owns the bodies and the broadphase space.
type World struct {
	width, height float64
	pad           float64 // space extends this far beyond the arena on every side
	space         *resolv.Space
	hero          *Body
	others        []*Body
	byShape       map[resolv.IShape]*Body
	nextID        BodyID
}

// NewWorld creates a world for an arena of the given size. The broadphase
// covers pad units outside the arena so off-screen bodies still collide.
func NewWorld(width, height, pad float64) *World {
	spaceW := int(math.Ceil(width + 2*pad))
	spaceH := int(math.Ceil(height + 2*pad))
	return &World{
		width:   width,
		height:  height,
		pad:     pad,
		space:   resolv.NewSpace(spaceW, spaceH, cellSize, cellSize),
		byShape: make(map[resolv.IShape]*Body),
	}
}

// Size returns the arena dimensions.
func (w *World) Size() (float64, float64) {
	return w.width, w.height
}

// SetHero installs the tracked body, replacing any previous one.
func (w *World) SetHero(b *Body) {
	if w.hero != nil && w.hero.shape != nil {
		w.space.Remove(w.hero.shape)
	}
	w.hero = b
	b.shape = resolv.NewCircle(b.Pos.X+w.pad, b.Pos.Y+w.pad, b.Radius)
	b.shape.Tags().Set(tagHero)
	w.space.Add(b.shape)
}

// Hero returns the tracked body.
func (w *World) Hero() *Body {
	return w.hero
}

// Add inserts a body, assigns its ID and returns it.
func (w *World) Add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	b.shape = resolv.NewCircle(b.Pos.X+w.pad, b.Pos.Y+w.pad, b.Radius)
	b.shape.Tags().Set(tagOther)
	w.space.Add(b.shape)
	w.others = append(w.others, b)
	w.byShape[b.shape] = b
	return b.ID
}

// Remove deletes a body. Removing an unknown body is a no-op.
func (w *World) Remove(b *Body) {
	if b == nil || b.shape == nil {
		return
	}
	if _, ok := w.byShape[b.shape]; !ok {
		return
	}
	w.space.Remove(b.shape)
	delete(w.byShape, b.shape)
	for i, o := range w.others {
		if o == b {
			w.others = append(w.others[:i], w.others[i+1:]...)
			break
		}
	}
}

// Clear removes every body except the hero and restarts ID numbering.
func (w *World) Clear() {
	for _, b := range w.others {
		w.space.Remove(b.shape)
	}
	w.others = w.others[:0]
	clear(w.byShape)
	w.nextID = 0
}

// Bodies returns the non-hero bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.others
}

// Step advances every body by dt: drag, integration, bounds clamp.
func (w *World) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}
	if w.hero != nil {
		w.integrate(w.hero, secs)
	}
	for _, b := range w.others {
		w.integrate(b, secs)
	}
}

func (w *World) integrate(b *Body, secs float64) {
	if b.Drag > 0 {
		b.Vel.X = applyDrag(b.Vel.X, b.Drag*secs)
		b.Vel.Y = applyDrag(b.Vel.Y, b.Drag*secs)
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(secs))

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
	b.shape.SetPosition(b.Pos.X+w.pad, b.Pos.Y+w.pad)
}

// applyDrag moves v toward zero by amount without crossing it.
func applyDrag(v, amount float64) float64 {
	switch {
	case v > 0:
		return math.Max(0, v-amount)
	case v < 0:
		return math.Min(0, v+amount)
	default:
		return 0
	}
}

// clampToBounds keeps a body inside the arena and stops motion into the wall.
func (w *World) clampToBounds(b *Body) {
	minX, maxX := b.Radius, w.width-b.Radius
	minY, maxY := b.Radius, w.height-b.Radius

	if b.Pos.X < minX {
		b.Pos.X = minX
		b.Vel.X = math.Max(0, b.Vel.X)
	} else if b.Pos.X > maxX {
		b.Pos.X = maxX
		b.Vel.X = math.Min(0, b.Vel.X)
	}
	if b.Pos.Y < minY {
		b.Pos.Y = minY
		b.Vel.Y = math.Max(0, b.Vel.Y)
	} else if b.Pos.Y > maxY {
		b.Pos.Y = maxY
		b.Vel.Y = math.Min(0, b.Vel.Y)
	}
}

// HeroOverlaps returns the bodies currently overlapping the hero, ordered by ID.
// resolv narrows the candidates to nearby cells; circles touch when their
// centres are at most the sum of the radii apart, containment included.
func (w *World) HeroOverlaps() []*Body {
	if w.hero == nil || len(w.others) == 0 {
		return nil
	}

	var hits []*Body
	w.hero.shape.SelectTouchingCells(1).FilterShapes().ByTags(tagOther).ForEach(func(shape resolv.IShape) bool {
		b, ok := w.byShape[shape]
		if ok && Overlapping(w.hero, b) {
			hits = append(hits, b)
		}
		return true
	})

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// Overlapping reports whether two circular bodies touch or overlap.
func Overlapping(a, b *Body) bool {
	return core.Dist(a.Pos, b.Pos) <= a.Radius+b.Radius
}

// Escaped returns bodies farther than margin outside the arena that are
// still moving away from it. They can never re-enter.
func (w *World) Escaped(margin float64) []*Body {
	var out []*Body
	for _, b := range w.others {
		dx, dy := 0.0, 0.0
		switch {
		case b.Pos.X < -margin:
			dx = -1
		case b.Pos.X > w.width+margin:
			dx = 1
		}
		switch {
		case b.Pos.Y < -margin:
			dy = -1
		case b.Pos.Y > w.height+margin:
			dy = 1
		}
		if dx == 0 && dy == 0 {
			continue
		}
		if (dx == 0 || b.Vel.X*dx >= 0) && (dy == 0 || b.Vel.Y*dy >= 0) {
			out = append(out, b)
		}
	}
	return out
}

// Freeze zeroes every velocity.
func (w *World) Freeze() {
	if w.hero != nil {
		w.hero.Vel = core.Vec2{}
	}
	for _, b := range w.others {
		b.Vel = core.Vec2{}
	}
}
