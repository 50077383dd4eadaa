// Package window hosts Soul Slash in a desktop window through ebiten.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/games/soulslash"
	"github.com/vovakirdan/soul-slash/internal/platform/runlog"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

// Logical window size in pixels.
const (
	ScreenW = 960
	ScreenH = 540
)

// Options configure a window session.
type Options struct {
	Store      *storage.Store // Nil skips recording
	Logger     *log.Logger
	Player     string
	Difficulty string
	Seed       int64 // 0 picks a time-based seed
	TickRate   int
}

// Host runs one game instance inside ebiten's update loop.
type Host struct {
	game     *soulslash.Game
	keys     KeySource
	recorder *runlog.Recorder
	runtime  core.RuntimeConfig
}

// NewHost resets the game and prepares it for the window loop.
func NewHost(game *soulslash.Game, opts Options) *Host {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	// The character grid only gates the terminal renderer; the window
	// draws the arena directly.
	runtime := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
		Caps:     core.FullCapabilities(),
	}

	h := &Host{
		game:    game,
		keys:    ebitenKeys{},
		runtime: runtime,
		recorder: runlog.New(opts.Store, opts.Logger, runlog.Options{
			GameID:     game.ID(),
			Player:     opts.Player,
			Difficulty: opts.Difficulty,
			Seed:       opts.Seed,
		}),
	}

	game.Reset(runtime)
	if err := game.ConfigError(); err != nil {
		h.recorder.Logger().Warn("using default config", "error", err)
	}
	h.recorder.Started()
	return h
}

// Update advances the game by one tick. It returns ebiten.Termination once
// the player leaves.
func (h *Host) Update() error {
	if quitRequested(h.keys) {
		h.recorder.Abandon(h.game.Elapsed())
		return ebiten.Termination
	}

	frame := ReadFrame(h.keys)
	// Esc rests after the session and pauses during it
	if frame.Has(core.ActionBack) && !h.game.State().GameOver {
		frame.Set(core.ActionPause)
	}

	res := h.game.Step(frame)
	h.recorder.Observe(res, h.game.Elapsed())

	if res.State.Ended {
		return ebiten.Termination
	}
	return nil
}

// Layout fixes the logical screen size; ebiten scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return ScreenW, ScreenH
}

// Run opens the window and blocks until the player leaves or closes it.
func Run(game *soulslash.Game, opts Options) error {
	host := NewHost(game, opts)

	ebiten.SetWindowSize(ScreenW, ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.runtime.TickRate)

	err := ebiten.RunGame(host)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	// Closing the window mid-run still keeps the score
	host.recorder.Abandon(game.Elapsed())
	return nil
}
