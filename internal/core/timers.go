package core

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id TimerID
	at time.Duration
	fn func()
}

// Timers schedules one-shot callbacks against a game clock.
// The clock is supplied by the caller, so timers stop while a game is paused.
type Timers struct {
	nextID  TimerID
	pending []timer
}

// After schedules fn to run once the clock reaches now+delay.
func (t *Timers) After(now, delay time.Duration, fn func()) TimerID {
	t.nextID++
	t.pending = append(t.pending, timer{id: t.nextID, at: now + delay, fn: fn})
	return t.nextID
}

// Cancel removes a pending callback. Unknown ids are ignored.
func (t *Timers) Cancel(id TimerID) {
	for i, tm := range t.pending {
		if tm.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return
		}
	}
}

// Fire runs every callback that is due at now, earliest first,
// and returns how many ran.
func (t *Timers) Fire(now time.Duration) int {
	var due []timer
	kept := t.pending[:0]
	for _, tm := range t.pending {
		if tm.at <= now {
			due = append(due, tm)
		} else {
			kept = append(kept, tm)
		}
	}
	t.pending = kept

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].at < due[j].at
	})
	for _, tm := range due {
		tm.fn()
	}
	return len(due)
}

// Len returns the number of pending callbacks.
func (t *Timers) Len() int {
	return len(t.pending)
}

// Reset drops all pending callbacks.
func (t *Timers) Reset() {
	t.pending = t.pending[:0]
}
