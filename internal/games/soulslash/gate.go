package soulslash

import "github.com/vovakirdan/soul-slash/internal/core"

// Phase is the session state of the game-over gate.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome converts the phase to the platform outcome.
func (p Phase) Outcome() core.Outcome {
	switch p {
	case PhaseWon:
		return core.OutcomeWon
	case PhaseLost:
		return core.OutcomeLost
	default:
		return core.OutcomeNone
	}
}

// Gate decides when a session is over. Once Won or Lost it stays there
// until Restart; at most one transition out of Playing happens per session.
type Gate struct {
	phase    Phase
	winScore int // 0 means the session can only be lost
	quit     bool
}

// NewGate creates a gate in the Playing phase.
func NewGate(winScore int) Gate {
	return Gate{winScore: winScore}
}

// Phase returns the current phase.
func (g *Gate) Phase() Phase {
	return g.phase
}

// Playing reports whether the simulation may still advance.
func (g *Gate) Playing() bool {
	return g.phase == PhasePlaying
}

// Over reports whether the session has ended in a win or loss.
func (g *Gate) Over() bool {
	return g.phase != PhasePlaying
}

// CheckHealth moves to Lost when health is exhausted. Returns true on transition.
func (g *Gate) CheckHealth(health int) bool {
	if !g.Playing() || health > 0 {
		return false
	}
	g.phase = PhaseLost
	return true
}

// CheckScore moves to Won when the score reaches the threshold. Returns true on transition.
func (g *Gate) CheckScore(score int) bool {
	if !g.Playing() || g.winScore <= 0 || score < g.winScore {
		return false
	}
	g.phase = PhaseWon
	return true
}

// Restart returns a finished session to Playing. Returns false while still playing.
func (g *Gate) Restart() bool {
	if !g.Over() {
		return false
	}
	g.phase = PhasePlaying
	g.quit = false
	return true
}

// Quit marks a finished session as left by the player. Returns false while still playing.
func (g *Gate) Quit() bool {
	if !g.Over() {
		return false
	}
	g.quit = true
	return true
}

// Quitting reports whether the player left the session.
func (g *Gate) Quitting() bool {
	return g.quit
}
