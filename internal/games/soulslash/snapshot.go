package soulslash

import "math"

// Snapshot is a flat copy of the session state for determinism checks.
// Positions and velocities are stored in thousandths of an arena unit.
type Snapshot struct {
	Tick       uint64
	ClockMS    int64
	Mode       int
	Phase      int
	Paused     bool
	Score      int
	Health     int
	IntervalMS int64
	LastSpawn  int64
	HeroData   []int // X, Y, VX, VY, Facing

	// Each enemy is 5 ints: ID, X, Y, VX, VY
	EnemyCount int
	EnemyData  []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sim
	hero := s.Hero()

	enemyData := make([]int, 0, len(s.enemies)*5)
	for _, e := range s.enemies {
		b := e.Body
		enemyData = append(enemyData, e.ID, milli(b.Pos.X), milli(b.Pos.Y), milli(b.Vel.X), milli(b.Vel.Y))
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		ClockMS:    g.clock.Milliseconds(),
		Mode:       int(g.mode),
		Phase:      int(s.Phase()),
		Paused:     g.paused,
		Score:      s.score,
		Health:     hero.Health,
		IntervalMS: s.Interval().Milliseconds(),
		LastSpawn:  s.lastSpawn.Milliseconds(),
		HeroData: []int{
			milli(hero.Body.Pos.X), milli(hero.Body.Pos.Y),
			milli(hero.Body.Vel.X), milli(hero.Body.Vel.Y),
			int(hero.Facing),
		},
		EnemyCount: len(s.enemies),
		EnemyData:  enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockMS)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.IntervalMS) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastSpawn)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.HeroData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
