package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/soul-slash/internal/core"
)

func newTestWorld() (*World, *Body) {
	w := NewWorld(960, 540, 200)
	hero := &Body{Pos: core.V(480, 270), Radius: 24, CollideWorldBounds: true}
	w.SetHero(hero)
	return w, hero
}

func TestStepIntegratesVelocity(t *testing.T) {
	w, _ := newTestWorld()
	b := &Body{Pos: core.V(-40, 300), Vel: core.V(120, 0), Radius: 22}
	w.Add(b)

	w.Step(500 * time.Millisecond)

	assert.InDelta(t, 20.0, b.Pos.X, 1e-9)
	assert.InDelta(t, 300.0, b.Pos.Y, 1e-9)
}

func TestStepAppliesDragPerAxis(t *testing.T) {
	w, hero := newTestWorld()
	hero.Drag = 320
	hero.Vel = core.V(240, -10)

	w.Step(time.Second / 10)

	// 320 * 0.1 = 32 removed from each axis, clamped at zero
	assert.InDelta(t, 208.0, hero.Vel.X, 1e-9)
	assert.InDelta(t, 0.0, hero.Vel.Y, 1e-9)
}

func TestWorldBoundsClamp(t *testing.T) {
	w, hero := newTestWorld()
	hero.Pos = core.V(30, 30)
	hero.Vel = core.V(-600, -600)

	w.Step(time.Second)

	assert.Equal(t, core.V(24, 24), hero.Pos, "hero should stop at the wall")
	assert.Equal(t, core.V(0, 0), hero.Vel, "velocity into the wall should be cancelled")

	hero.Pos = core.V(950, 530)
	hero.Vel = core.V(600, 600)
	w.Step(time.Second)
	assert.Equal(t, core.V(936, 516), hero.Pos)
}

func TestHeroOverlapsOrderedByID(t *testing.T) {
	w, _ := newTestWorld()
	far := &Body{Pos: core.V(100, 100), Radius: 22}
	second := &Body{Pos: core.V(500, 270), Radius: 22}
	first := &Body{Pos: core.V(470, 280), Radius: 22}

	w.Add(far)
	w.Add(first)
	w.Add(second)

	hits := w.HeroOverlaps()
	require.Len(t, hits, 2)
	assert.Equal(t, first.ID, hits[0].ID)
	assert.Equal(t, second.ID, hits[1].ID)
}

func TestRemoveStopsOverlap(t *testing.T) {
	w, _ := newTestWorld()
	b := &Body{Pos: core.V(480, 270), Radius: 22}
	w.Add(b)
	require.Len(t, w.HeroOverlaps(), 1)

	w.Remove(b)
	w.Remove(b) // second removal is a no-op

	assert.Empty(t, w.HeroOverlaps())
	assert.Empty(t, w.Bodies())
}

func TestSameCentreOverlaps(t *testing.T) {
	w, hero := newTestWorld()
	b := &Body{Pos: hero.Pos, Radius: 22}
	w.Add(b)

	hits := w.HeroOverlaps()
	require.Len(t, hits, 1)
	assert.Same(t, b, hits[0])
}

func TestContainedBodyOverlaps(t *testing.T) {
	w, hero := newTestWorld()
	// Closer than the radius difference, so one circle sits inside the other
	b := &Body{Pos: hero.Pos.Add(core.V(1.5, 0)), Radius: 22}
	w.Add(b)

	assert.Len(t, w.HeroOverlaps(), 1)
}

func TestOverlapAtTouchingDistance(t *testing.T) {
	w, hero := newTestWorld()
	touching := &Body{Pos: hero.Pos.Add(core.V(0, 46)), Radius: 22}
	apart := &Body{Pos: hero.Pos.Add(core.V(-46.5, 0)), Radius: 22}
	w.Add(touching)
	w.Add(apart)

	hits := w.HeroOverlaps()
	require.Len(t, hits, 1)
	assert.Same(t, touching, hits[0])
}

func TestMovingBodyReachesHero(t *testing.T) {
	w, hero := newTestWorld()
	b := &Body{Pos: hero.Pos.Add(core.V(-99, 0)), Vel: core.V(120, 0), Radius: 22}
	w.Add(b)

	frames := 0
	for ; frames < 60 && len(w.HeroOverlaps()) == 0; frames++ {
		w.Step(time.Second / 60)
	}

	require.Len(t, w.HeroOverlaps(), 1, "body should reach the hero within a second")
	// 53 units to close at 2 units per frame
	assert.Equal(t, 27, frames)
}

func TestOffscreenBodiesStillCollide(t *testing.T) {
	w, hero := newTestWorld()
	hero.Pos = core.V(24, 24)
	w.Step(time.Millisecond) // sync shape

	b := &Body{Pos: core.V(-10, 24), Radius: 22}
	w.Add(b)

	assert.Len(t, w.HeroOverlaps(), 1)
}

func TestEscaped(t *testing.T) {
	w, _ := newTestWorld()
	leaving := &Body{Pos: core.V(-200, 100), Vel: core.V(-50, 10), Radius: 22}
	entering := &Body{Pos: core.V(-200, 100), Vel: core.V(50, 0), Radius: 22}
	inside := &Body{Pos: core.V(300, 300), Vel: core.V(-50, 0), Radius: 22}
	justSpawned := &Body{Pos: core.V(-40, 100), Vel: core.V(-1, 0), Radius: 22}

	for _, b := range []*Body{leaving, entering, inside, justSpawned} {
		w.Add(b)
	}

	escaped := w.Escaped(100)
	require.Len(t, escaped, 1)
	assert.Same(t, leaving, escaped[0])
}

func TestClearAndFreeze(t *testing.T) {
	w, hero := newTestWorld()
	hero.Vel = core.V(10, 10)
	b := &Body{Pos: core.V(10, 10), Vel: core.V(5, 5), Radius: 22}
	w.Add(b)

	w.Freeze()
	assert.True(t, hero.Vel.IsZero())
	assert.True(t, b.Vel.IsZero())

	w.Clear()
	assert.Empty(t, w.Bodies())

	next := &Body{Pos: core.V(10, 10), Radius: 22}
	assert.Equal(t, BodyID(1), w.Add(next), "IDs restart after Clear")
}
