package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// KeySource reports keyboard state for the current frame.
type KeySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// heldKeys are level-triggered: the action is on for as long as a key is down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionSlash: {ebiten.KeySpace},
}

// commandKeys fire once per press.
var commandKeys = map[core.Action][]ebiten.Key{
	core.ActionRestart: {ebiten.KeyR},
	core.ActionBack:    {ebiten.KeyEscape},
	core.ActionPause:   {ebiten.KeyP},
}

// ReadFrame builds the input frame for one tick.
func ReadFrame(keys KeySource) core.InputFrame {
	frame := core.NewInputFrame()

	for action, ks := range heldKeys {
		for _, k := range ks {
			if keys.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, ks := range commandKeys {
		for _, k := range ks {
			if keys.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// quitRequested reports the window-only quit chord.
func quitRequested(keys KeySource) bool {
	return keys.JustPressed(ebiten.KeyQ) &&
		(keys.Pressed(ebiten.KeyControl) || keys.Pressed(ebiten.KeyMeta))
}
