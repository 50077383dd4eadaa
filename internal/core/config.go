package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Caps is decided once by the host at startup.
	Caps Capabilities
}

// Capabilities records optional presentation features the host supports.
// Games consult it instead of probing the environment every frame.
type Capabilities struct {
	Color   bool // Host can render colours
	Effects bool // Transient visuals (slash ring)
	Shake   bool // Screen shake on hero hit
}

// FullCapabilities enables every optional feature.
func FullCapabilities() Capabilities {
	return Capabilities{Color: true, Effects: true, Shake: true}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Caps:     FullCapabilities(),
	}
}

// Outcome is the result of a finished session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the storage name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Health   int     // Remaining health, clamped to >= 0
	GameOver bool    // Whether the game has ended
	Outcome  Outcome // Won or lost once GameOver is set
	Paused   bool    // Whether the game is paused
	Ended    bool    // Player chose to leave the finished session
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventSpawn EventType = iota
	EventSlash
	EventDefeat
	EventHeroHit
	EventRampDown
	EventGameOver
	EventRestart
)

// String returns a short name for logging.
func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventSlash:
		return "slash"
	case EventDefeat:
		return "defeat"
	case EventHeroHit:
		return "hero_hit"
	case EventRampDown:
		return "ramp_down"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single simulation occurrence reported to the host.
// Value carries the event-specific number (enemy id, new interval, score...).
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
