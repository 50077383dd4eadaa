package tui

import (
	"time"

	"github.com/vovakirdan/soul-slash/internal/core"
)

// Terminals report key presses and auto-repeats but never releases.
// A key counts as held for a while after its first press, long enough to
// cover the auto-repeat delay, then for a shorter window after each repeat.
const (
	DefaultHoldInitial = 450 * time.Millisecond
	DefaultHoldRepeat  = 100 * time.Millisecond
)

// HoldTracker turns a stream of key presses into held actions.
//
// Slash is pulsed instead of held: every press shows up on exactly one
// frame, with a released frame before the next one, so quick double taps
// give two slashes. Holding space in a terminal therefore slashes again on
// every auto-repeat.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time

	pulses map[core.Action]int  // Presses waiting for a frame
	fired  map[core.Action]bool // Set on the last frame
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Action]time.Time),
		pulses:  make(map[core.Action]int),
		fired:   make(map[core.Action]bool),
	}
}

// opposite returns the direction on the same axis, or ActionNone.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// pulsed reports whether an action fires once per press.
func pulsed(a core.Action) bool {
	return a == core.ActionSlash
}

// Press records a key event for a held action at now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if pulsed(a) {
		h.pulses[a]++
		return
	}

	// Pressing the other way means the first key was let go
	if o := opposite(a); o != core.ActionNone {
		delete(h.until, o)
	}

	if !h.Held(a, now) {
		h.until[a] = now.Add(h.initial)
		return
	}

	// Auto-repeat: extend, never shorten
	if next := now.Add(h.repeat); next.After(h.until[a]) {
		h.until[a] = next
	}
}

// Held reports whether an action is still considered down at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Pending returns how many presses of a pulsed action are waiting.
func (h *HoldTracker) Pending(a core.Action) int {
	return h.pulses[a]
}

// Apply sets every held action on the frame and forgets expired ones.
// A waiting pulse is applied unless it fired on the previous frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}

	for a, n := range h.pulses {
		if h.fired[a] {
			h.fired[a] = false
			continue
		}
		if n > 0 {
			frame.Set(a)
			h.fired[a] = true
			h.pulses[a] = n - 1
		}
	}
}

// ReleaseAll drops every held action and waiting pulse.
func (h *HoldTracker) ReleaseAll() {
	clear(h.until)
	clear(h.pulses)
	clear(h.fired)
}
