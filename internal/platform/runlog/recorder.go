// Package runlog logs simulation events and stores each finished session
// once, for every host that runs a game.
package runlog

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

// Recorder follows one hosted game. The store and logger may be nil.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger

	gameID     string
	player     string
	difficulty string
	seed       int64

	last     core.GameState
	recorded bool // Whether the current session's result has been stored
}

// Options identify the session being recorded.
type Options struct {
	GameID     string
	Player     string
	Difficulty string
	Seed       int64
}

// New creates a recorder for one game instance.
func New(store *storage.Store, logger *log.Logger, opts Options) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:      store,
		logger:     logger.With("game", opts.GameID),
		gameID:     opts.GameID,
		player:     opts.Player,
		difficulty: opts.Difficulty,
		seed:       opts.Seed,
	}
}

// Logger returns the recorder's logger, tagged with the game ID.
func (r *Recorder) Logger() *log.Logger {
	return r.logger
}

// Started logs the beginning of a session.
func (r *Recorder) Started() {
	r.logger.Info("session started",
		"seed", r.seed,
		"difficulty", r.difficulty,
		"player", r.player,
	)
}

// Observe logs a step's events and stores the result the first time the
// session is seen over. It reports whether the session restarted.
func (r *Recorder) Observe(res core.StepResult, elapsed time.Duration) (restarted bool) {
	r.last = res.State

	for _, ev := range res.Events {
		switch ev.Type {
		case core.EventGameOver:
			r.logger.Info("session over",
				"outcome", core.Outcome(ev.Value),
				"score", res.State.Score,
				"health", res.State.Health,
			)
		case core.EventRestart:
			r.recorded = false
			restarted = true
			r.logger.Info("session restarted")
		case core.EventRampDown:
			r.logger.Debug("spawn interval", "ms", ev.Value)
		default:
			r.logger.Debug(ev.Type.String(), "value", ev.Value)
		}
	}

	if res.State.GameOver && !r.recorded {
		r.save(res.State, elapsed)
		r.recorded = true
	}
	if res.State.Ended {
		r.logger.Info("player left", "score", res.State.Score)
	}
	return restarted
}

// Abandon stores a session the player quit before it ended, if it scored.
func (r *Recorder) Abandon(elapsed time.Duration) {
	if r.recorded || r.last.GameOver || r.last.Score == 0 {
		return
	}
	st := r.last
	st.Outcome = core.OutcomeNone
	r.save(st, elapsed)
	r.recorded = true
}

// save stores the score when positive and always stores the run.
func (r *Recorder) save(st core.GameState, elapsed time.Duration) {
	if r.store == nil {
		return
	}

	if st.Score > 0 {
		if _, err := r.store.SavePlayerScore(r.gameID, r.player, st.Score); err != nil {
			r.logger.Warn("could not save score", "error", err)
		} else {
			r.logger.Info("score saved", "score", st.Score)
		}
	}

	run := storage.Run{
		GameID:     r.gameID,
		Outcome:    st.Outcome.String(),
		Score:      st.Score,
		Health:     st.Health,
		Duration:   elapsed,
		Seed:       r.seed,
		Difficulty: r.difficulty,
		Player:     r.player,
	}
	runID, err := r.store.SaveRun(run)
	if err != nil {
		r.logger.Warn("could not save run", "error", err)
		return
	}
	r.logger.Debug("run recorded", "run_id", runID, "duration", elapsed)
}
