package soulslash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// Visual characters for rendering
const (
	HeroChar      = '@'
	DemonChar     = 'Ψ'
	SlashChar     = '·'
	FacingLeftCh  = '<'
	FacingRightCh = '>'
)

// Text shown by the renderer.
const (
	HintText      = "Arrows/WASD = Move | Space = Slash | P = Pause"
	VictoryText   = "Victory!"
	DefeatText    = "Soul Taken!"
	EndPromptText = "Press R to try again | Press Esc to rest"
)

// ringPoints is how many points approximate the slash ring.
const ringPoints = 36

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}
	if g.sim == nil {
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-2))

	v := g.viewport(dst)
	if g.slashFx {
		g.renderSlashRing(dst, v)
	}
	g.renderDemons(dst, v)
	g.renderHero(dst, v)

	switch {
	case g.sim.Phase() != PhasePlaying:
		g.renderEndBanner(dst)
	case g.paused:
		g.renderBanner(dst, "PAUSED", "Press P to resume", core.ColorBanner)
	default:
		dst.DrawTextCentered(dst.Height()-1, HintText, g.color(core.ColorGray))
	}
}

// color drops colours the host cannot show.
func (g *Game) color(c core.Color) core.Color {
	if !g.runtime.Caps.Color {
		return core.ColorDefault
	}
	return c
}

// renderHUD draws the score and remaining soul power.
func (g *Game) renderHUD(dst *core.Screen) {
	score := fmt.Sprintf("Score: %d", g.sim.Score())
	if g.mode == ModeCampaign && g.cfg.Combat.WinScore > 0 {
		score = fmt.Sprintf("Score: %d/%d", g.sim.Score(), g.cfg.Combat.WinScore)
	}
	dst.DrawText(1, 0, score)

	soul := fmt.Sprintf("Soul Power: %d", max(g.sim.Hero().Health, 0))
	dst.DrawTextColored(dst.Width()-len(soul)-1, 0, soul, g.color(core.ColorSoul))

	if g.mode == ModeEndless {
		dst.DrawTextCentered(0, "ENDLESS", g.color(core.ColorGray))
	}
}

// viewport maps arena coordinates onto the inside of the arena box.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64 // cells per arena unit
	shake  int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	v := viewport{
		x0: 1,
		y0: 2,
		w:  dst.Width() - 2,
		h:  dst.Height() - 4,
	}
	v.sx = float64(v.w) / g.cfg.Arena.Width
	v.sy = float64(v.h) / g.cfg.Arena.Height
	if g.shaking {
		v.shake = 1
		if g.tickCount%2 == 1 {
			v.shake = -1
		}
	}
	return v
}

// cell converts an arena position to a screen cell. ok is false when the
// position falls outside the arena box.
func (v viewport) cell(p core.Vec2) (int, int, bool) {
	cx := int(math.Floor(p.X * v.sx))
	cy := int(math.Floor(p.Y * v.sy))
	if cx < 0 || cy < 0 || cx >= v.w || cy >= v.h {
		return 0, 0, false
	}
	cx = core.Clamp(cx+v.shake, 0, v.w-1)
	return v.x0 + cx, v.y0 + cy, true
}

func (g *Game) renderHero(dst *core.Screen, v viewport) {
	hero := g.sim.Hero()
	x, y, ok := v.cell(hero.Pos())
	if !ok {
		return
	}
	c := g.color(core.ColorHero)
	dst.SetColored(x, y, HeroChar, c)

	if hero.Facing == FacingLeft {
		if x-1 >= v.x0 {
			dst.SetColored(x-1, y, FacingLeftCh, c)
		}
	} else if x+1 < v.x0+v.w {
		dst.SetColored(x+1, y, FacingRightCh, c)
	}
}

func (g *Game) renderDemons(dst *core.Screen, v viewport) {
	c := g.color(core.ColorDemon)
	for _, e := range g.sim.Enemies() {
		if x, y, ok := v.cell(e.Pos()); ok {
			dst.SetColored(x, y, DemonChar, c)
		}
	}
}

// renderSlashRing outlines the slash reach around the hero.
func (g *Game) renderSlashRing(dst *core.Screen, v viewport) {
	center := g.sim.Hero().Pos()
	r := g.cfg.Combat.SlashRadius
	c := g.color(core.ColorSlash)
	for i := range ringPoints {
		a := 2 * math.Pi * float64(i) / ringPoints
		p := center.Add(core.V(math.Cos(a)*r, math.Sin(a)*r))
		if x, y, ok := v.cell(p); ok {
			dst.SetColored(x, y, SlashChar, c)
		}
	}
}

func (g *Game) renderEndBanner(dst *core.Screen) {
	title := DefeatText
	if g.sim.Phase() == PhaseWon {
		title = VictoryText
	}
	g.renderBanner(dst, title, EndPromptText, core.ColorBanner)
}

// renderBanner draws a boxed two-line message in the middle of the arena.
func (g *Game) renderBanner(dst *core.Screen, title, subtitle string, c core.Color) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 4
	w = min(w, dst.Width())
	x := (dst.Width() - w) / 2
	y := dst.Height()/2 - 2

	box := core.NewRect(x, y, w, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(y+1, title, g.color(c))
	dst.DrawTextCentered(y+3, subtitle, g.color(core.ColorDefault))
}
