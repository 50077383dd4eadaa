package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/soul-slash/internal/registry"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

var boardModes = []registry.GameInfo{
	{ID: "campaign", Title: "Campaign"},
	{ID: "endless", Title: "Endless"},
}

func seedBoard(t *testing.T) *storage.Store {
	t.Helper()
	store := openModelStore(t)

	for _, s := range []int{12, 30, 7} {
		if _, err := store.SavePlayerScore("campaign", "ash", s); err != nil {
			t.Fatalf("SavePlayerScore() failed: %v", err)
		}
	}
	runs := []storage.Run{
		{GameID: "campaign", Outcome: "won", Score: 30, Duration: 95 * time.Second, Difficulty: "normal", Player: "ash"},
		{GameID: "campaign", Outcome: "lost", Score: 12, Duration: 40 * time.Second, Difficulty: "hard", Player: "ash"},
		{GameID: "endless", Outcome: "lost", Score: 55, Duration: 3 * time.Minute, Difficulty: "normal", Player: "bo"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func boardKey(t *testing.T, m ScoreboardModel, msg tea.KeyMsg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sb, cmd
}

func TestScoreboardRanksScores(t *testing.T) {
	m := newScoreboard(seedBoard(t), boardModes, 100, 30)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("Expected 3 score rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "30" || rows[0][3] != "ash" {
		t.Errorf("Unexpected top row %v", rows[0])
	}
	if got := m.statsLine(); !strings.Contains(got, "Wins 1") || !strings.Contains(got, "Losses 1") {
		t.Errorf("Unexpected stats line %q", got)
	}
}

func TestScoreboardTogglesRecentRuns(t *testing.T) {
	m := newScoreboard(seedBoard(t), boardModes, 100, 30)

	m, _ = boardKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(rows))
	}
	// Newest first
	if rows[0][0] != "lost" || rows[0][2] != "40s" || rows[0][3] != "hard" {
		t.Errorf("Unexpected newest run %v", rows[0])
	}
	if !strings.Contains(m.View(), "RECENT RUNS") {
		t.Error("Expected the runs title")
	}
}

func TestScoreboardSwitchesMode(t *testing.T) {
	m := newScoreboard(seedBoard(t), boardModes, 100, 30)

	m, _ = boardKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != 1 {
		t.Fatalf("Expected endless selected, got %d", m.mode)
	}
	if len(m.table.Rows()) != 0 {
		t.Error("Expected no endless scores")
	}
	if got := m.statsLine(); !strings.Contains(got, "Losses 1") {
		t.Errorf("Unexpected endless stats %q", got)
	}

	// Wraps backwards
	m, _ = boardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = boardKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.mode != 1 {
		t.Errorf("Expected wrap to the last mode, got %d", m.mode)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := newScoreboard(nil, boardModes, 60, 20)

	if m.statsLine() != "No runs yet" {
		t.Errorf("Unexpected stats line %q", m.statsLine())
	}
	if !strings.Contains(m.View(), "No souls claimed yet") {
		t.Error("Expected the empty message")
	}
}

func TestScoreboardEmbeddedBack(t *testing.T) {
	m := newScoreboard(nil, boardModes, 80, 24)
	m.embedded = true

	m, cmd := boardKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("Expected back without quitting")
	}
	if cmd != nil {
		t.Error("Expected an embedded scoreboard not to quit the program")
	}
}
