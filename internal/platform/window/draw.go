package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/soul-slash/internal/config"
	"github.com/vovakirdan/soul-slash/internal/core"
	"github.com/vovakirdan/soul-slash/internal/games/soulslash"
)

// Palette
var (
	colBackground = color.RGBA{0x14, 0x10, 0x1c, 0xff}
	colArena      = color.RGBA{0x1e, 0x19, 0x2a, 0xff}
	colBorder     = color.RGBA{0x5a, 0x4f, 0x70, 0xff}
	colHero       = color.RGBA{0x5f, 0xd7, 0xff, 0xff}
	colDemon      = color.RGBA{0xff, 0x5f, 0xaf, 0xff}
	colSlash      = color.RGBA{0xff, 0xff, 0xaf, 0xff}
	colSoul       = color.RGBA{0x87, 0xff, 0xaf, 0xff}
	colText       = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	colHint       = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	colShade      = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Face7x13 glyph metrics.
const (
	glyphW = 7
	lineH  = 13
	hudH   = 28
	pad    = 12
)

// view maps arena units to screen pixels.
type view struct {
	ox, oy float64 // Screen position of the arena origin
	scale  float64 // Pixels per arena unit
	w, h   float64 // Arena size on screen
}

// arenaView fits the arena between the HUD strips, keeping its aspect ratio.
func arenaView(arena config.ArenaConfig) view {
	availW := float64(ScreenW - 2*pad)
	availH := float64(ScreenH - 2*hudH)

	scale := min(availW/arena.Width, availH/arena.Height)
	w := arena.Width * scale
	h := arena.Height * scale
	return view{
		ox:    (float64(ScreenW) - w) / 2,
		oy:    hudH + (availH-h)/2,
		scale: scale,
		w:     w,
		h:     h,
	}
}

// point converts an arena position to screen pixels.
func (v view) point(p core.Vec2) (float32, float32) {
	return float32(v.ox + p.X*v.scale), float32(v.oy + p.Y*v.scale)
}

// Draw renders the arena, entities, HUD and banners.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	sim := h.game.Sim()
	if sim == nil {
		return
	}
	cfg := sim.Config()

	v := arenaView(cfg.Arena)
	if h.game.Shaking() {
		shake := 4.0
		if h.game.TickCount()%2 == 1 {
			shake = -shake
		}
		v.ox += shake
	}

	vector.FillRect(screen, float32(v.ox), float32(v.oy), float32(v.w), float32(v.h), colArena, false)
	vector.StrokeRect(screen, float32(v.ox), float32(v.oy), float32(v.w), float32(v.h), 2, colBorder, false)

	hero := sim.Hero()
	hx, hy := v.point(hero.Pos())

	if h.game.SlashEffectActive() {
		r := float32(cfg.Combat.SlashRadius * v.scale)
		vector.StrokeCircle(screen, hx, hy, r, 2, colSlash, true)
	}

	er := float32(cfg.Enemy.Radius * v.scale)
	for _, e := range sim.Enemies() {
		x, y := v.point(e.Pos())
		vector.DrawFilledCircle(screen, x, y, er, colDemon, true)
	}

	hr := float32(cfg.Hero.Radius * v.scale)
	vector.DrawFilledCircle(screen, hx, hy, hr, colHero, true)
	eye := hr * 0.6
	if hero.Facing == soulslash.FacingLeft {
		eye = -eye
	}
	vector.DrawFilledCircle(screen, hx+eye, hy-hr*0.2, max(hr*0.25, 2), colBackground, true)

	h.drawHUD(screen, sim, cfg)

	switch {
	case sim.Phase() == soulslash.PhaseWon:
		drawBanner(screen, soulslash.VictoryText, soulslash.EndPromptText)
	case sim.Phase() == soulslash.PhaseLost:
		drawBanner(screen, soulslash.DefeatText, soulslash.EndPromptText)
	case h.game.Paused():
		drawBanner(screen, "PAUSED", "Press P to resume")
	default:
		drawCentered(screen, soulslash.HintText, ScreenH-10, colHint)
	}
}

func (h *Host) drawHUD(screen *ebiten.Image, sim *soulslash.Sim, cfg config.SoulSlashConfig) {
	score := fmt.Sprintf("Score: %d", sim.Score())
	if cfg.Combat.WinScore > 0 {
		score = fmt.Sprintf("Score: %d/%d", sim.Score(), cfg.Combat.WinScore)
	} else {
		drawCentered(screen, "ENDLESS", 19, colHint)
	}
	text.Draw(screen, score, basicfont.Face7x13, pad, 19, colText)

	soul := fmt.Sprintf("Soul Power: %d", sim.State().Health)
	text.Draw(screen, soul, basicfont.Face7x13, ScreenW-pad-len(soul)*glyphW, 19, colSoul)
}

// drawBanner shades a box in the middle of the screen with two lines of text.
func drawBanner(screen *ebiten.Image, title, subtitle string) {
	w := float32(max(len(title), len(subtitle))*glyphW + 4*pad)
	bh := float32(4 * lineH)
	x := (ScreenW - w) / 2
	y := (ScreenH - bh) / 2

	vector.FillRect(screen, x, y, w, bh, colShade, false)
	vector.StrokeRect(screen, x, y, w, bh, 2, colBorder, false)
	drawCentered(screen, title, int(y)+lineH+6, colSlash)
	drawCentered(screen, subtitle, int(y)+3*lineH, colText)
}

// drawCentered draws a line of text centred horizontally with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	x := (ScreenW - len([]rune(s))*glyphW) / 2
	text.Draw(screen, s, basicfont.Face7x13, x, y, c)
}
