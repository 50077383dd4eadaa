package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/platform/runlog"
	"github.com/vovakirdan/soul-slash/internal/registry"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

// Session describes who is playing and how results are recorded.
type Session struct {
	Player     string      // Tag stored with scores and runs
	Difficulty string      // Preset name stored with runs
	Logger     *log.Logger // Event log; nil discards

	// Embedded models run inside a larger program (the SSH session)
	// and hand control back instead of quitting.
	Embedded bool
}

// resizer is implemented by games that can change layout mid-session.
type resizer interface {
	Resize(w, h int)
}

// elapsedReporter is implemented by games that track session length.
type elapsedReporter interface {
	Elapsed() time.Duration
}

// configReporter is implemented by games that fall back to defaults on a bad config.
type configReporter interface {
	ConfigError() error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	session   Session
	recorder  *runlog.Recorder
	logger    *log.Logger
	keyMapper *KeyMapper
	holds     *HoldTracker
	pending   core.InputFrame // One-shot actions for the next tick
	gameState core.GameState
	quitting  bool
	back      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, session Session) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	recorder := runlog.New(store, session.Logger, runlog.Options{
		GameID:     game.ID(),
		Player:     session.Player,
		Difficulty: session.Difficulty,
		Seed:       cfg.Seed,
	})

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		session:   session,
		recorder:  recorder,
		logger:    recorder.Logger(),
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat),
		pending:   core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigError(); err != nil {
			m.logger.Warn("using default config", "error", err)
		}
	}
	m.recorder.Started()

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recorder.Abandon(m.elapsed())
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case IsHeld(action):
		m.holds.Press(action, now)
	case action == core.ActionBack:
		// Esc leaves a finished session and pauses a running one
		if m.gameState.GameOver {
			m.pending.Set(core.ActionBack)
		} else {
			m.pending.Set(core.ActionPause)
		}
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}

	frame := m.pending.Clone()
	m.pending.Clear()
	m.holds.Apply(&frame, now)

	result := m.game.Step(frame)
	m.gameState = result.State
	if m.recorder.Observe(result, m.elapsed()) {
		m.holds.ReleaseAll()
	}

	if m.gameState.Ended {
		if m.session.Embedded {
			m.back = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// elapsed asks the game how long the session has run, if it knows.
func (m Model) elapsed() time.Duration {
	if er, ok := m.game.(elapsedReporter); ok {
		return er.Elapsed()
	}
	return 0
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".soulslash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether an embedded model handed control back.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, session Session) error {
	model := NewModel(game, store, cfg, session)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
