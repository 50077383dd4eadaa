package soulslash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
		Caps:     core.FullCapabilities(),
	}
}

func newTestGame() *Game {
	g := New()
	g.ResetWith(testRuntime(), config.DefaultSoulSlashConfig())
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Circle around the arena and slash every 20 ticks
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 90) % 4 {
		case 0:
			inputs[i].Set(core.ActionRight)
		case 1:
			inputs[i].Set(core.ActionDown)
		case 2:
			inputs[i].Set(core.ActionLeft)
		case 3:
			inputs[i].Set(core.ActionUp)
		}
		if i%20 < 2 {
			inputs[i].Set(core.ActionSlash)
		}
	}

	run := func() Snapshot {
		g := newTestGame()
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.EnemyCount != snap2.EnemyCount {
		t.Errorf("Determinism failed: enemy counts differ. Run1=%d, Run2=%d", snap1.EnemyCount, snap2.EnemyCount)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame()
	for range 200 {
		g.Step(frame(core.ActionRight))
	}

	g.ResetWith(testRuntime(), config.DefaultSoulSlashConfig())

	state := g.State()
	if state.Score != 0 || state.Health != 5 || state.GameOver || state.Paused {
		t.Errorf("Unexpected state after reset: %+v", state)
	}
	if g.TickCount() != 0 {
		t.Errorf("Expected tick count 0, got %d", g.TickCount())
	}
	if len(g.Sim().Enemies()) != 0 {
		t.Errorf("Expected no enemies after reset, got %d", len(g.Sim().Enemies()))
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame()
	g.Step(frame())
	before := g.Snapshot()

	result := g.Step(frame(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("Expected game to be paused")
	}

	for range 300 {
		g.Step(frame(core.ActionRight, core.ActionSlash))
	}
	after := g.Snapshot()
	if after.Tick != before.Tick || after.ClockMS != before.ClockMS {
		t.Errorf("Clock advanced while paused: %d -> %d ms", before.ClockMS, after.ClockMS)
	}
	if after.EnemyCount != 0 {
		t.Errorf("Spawned while paused: %d enemies", after.EnemyCount)
	}

	result = g.Step(frame(core.ActionPause))
	if result.State.Paused {
		t.Error("Expected game to resume")
	}
}

func TestPauseIgnoredWhenOver(t *testing.T) {
	g := newTestGame()
	g.Sim().hero.Health = 1
	addEnemy(g.Sim(), g.Sim().Hero().Pos(), core.Vec2{})
	g.Step(frame())
	if !g.State().GameOver {
		t.Fatal("Expected game over")
	}

	if g.Step(frame(core.ActionPause)).State.Paused {
		t.Error("Finished sessions cannot be paused")
	}
}

func TestEndlessHasNoWin(t *testing.T) {
	g := NewEndless()
	cfg := config.DefaultSoulSlashConfig()
	cfg.Combat.WinScore = 0
	g.ResetWith(testRuntime(), cfg)

	s := g.Sim()
	s.score = 40
	addEnemy(s, s.Hero().Pos().Add(core.V(50, 0)), core.Vec2{})
	g.Step(frame(core.ActionSlash))

	if g.State().Score != 41 {
		t.Errorf("Expected score 41, got %d", g.State().Score)
	}
	if g.State().GameOver {
		t.Error("Endless mode should not end on score")
	}
	if g.ID() != "soulslash_endless" {
		t.Errorf("Unexpected ID %q", g.ID())
	}
}

func TestEndlessResetDisablesWin(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntime())

	if g.cfg.Combat.WinScore != 0 {
		t.Errorf("Expected win score 0 in endless mode, got %d", g.cfg.Combat.WinScore)
	}
}

func TestInstanceDifficulty(t *testing.T) {
	g := New()
	g.SetDifficulty(config.DifficultyHard)
	g.Reset(testRuntime())

	if g.cfg.Hero.MaxHealth != 3 {
		t.Errorf("Expected hard preset health 3, got %d", g.cfg.Hero.MaxHealth)
	}
	if g.State().Health != 3 {
		t.Errorf("Expected session to start with 3 health, got %d", g.State().Health)
	}
}

func TestSlashEffectExpires(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionSlash))
	if !g.SlashEffectActive() {
		t.Fatal("Expected slash ring after slashing")
	}

	// 120ms at 60 ticks per second is a little over 7 ticks
	for range 7 {
		g.Step(frame())
	}
	if !g.SlashEffectActive() {
		t.Error("Slash ring ended early")
	}
	g.Step(frame())
	if g.SlashEffectActive() {
		t.Error("Slash ring should be gone after 120ms")
	}
}

func TestEffectsFollowCapabilities(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.Caps = core.Capabilities{}
	g.ResetWith(rt, config.DefaultSoulSlashConfig())

	addEnemy(g.Sim(), g.Sim().Hero().Pos(), core.Vec2{})
	g.Step(frame(core.ActionSlash))

	if g.SlashEffectActive() {
		t.Error("Slash ring drawn without effects capability")
	}
	if g.Shaking() {
		t.Error("Screen shook without shake capability")
	}
}

func TestHitShake(t *testing.T) {
	g := newTestGame()
	addEnemy(g.Sim(), g.Sim().Hero().Pos(), core.Vec2{})

	result := g.Step(frame())
	if result.State.Health != 4 {
		t.Fatalf("Expected health 4, got %d", result.State.Health)
	}
	if !g.Shaking() {
		t.Error("Expected shake after hit")
	}

	for range 10 {
		g.Step(frame())
	}
	if g.Shaking() {
		t.Error("Shake should stop after 150ms")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0/30", "Soul Power: 5", HintText, string(HeroChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}

func TestGameRenderEndScreen(t *testing.T) {
	g := newTestGame()
	g.Sim().hero.Health = 1
	addEnemy(g.Sim(), g.Sim().Hero().Pos(), core.Vec2{})
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, DefeatText) {
		t.Errorf("Expected %q on the end screen", DefeatText)
	}
	if !strings.Contains(out, EndPromptText) {
		t.Errorf("Expected %q on the end screen", EndPromptText)
	}
	if strings.Contains(out, HintText) {
		t.Error("Hint should be hidden once the session is over")
	}
	if !strings.Contains(out, "Soul Power: 0") {
		t.Error("Expected soul power 0")
	}
}

func TestGameRenderWithoutColor(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.Caps.Color = false
	g.ResetWith(rt, config.DefaultSoulSlashConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y).Color; c != core.ColorDefault {
				t.Fatalf("Cell (%d,%d) has colour %d without colour support", x, y, c)
			}
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.ResetWith(rt, config.DefaultSoulSlashConfig())

	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Expected too-small message")
	}
	if g.Step(frame(core.ActionRight)).State.GameOver {
		t.Error("Unexpected game over")
	}
	if g.TickCount() != 0 {
		t.Error("Game should not advance while the screen is too small")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"soulslash", "soulslash_endless"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Expected ID %q, got %q", id, g.ID())
		}
	}
}
