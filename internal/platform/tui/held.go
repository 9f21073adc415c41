package tui

import (
	"time"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// DefaultHoldWindow is how long a key press keeps a movement action held.
// Terminals report repeats rather than releases, so the window has to span
// the gap between the first press and the first auto-repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys turns a stream of key presses into per-tick input frames.
// Movement actions stay held while presses keep arriving within the window;
// every other action fires once on the next frame.
type HeldKeys struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	pending map[core.Action]bool
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		pressed: make(map[core.Action]time.Time),
		pending: make(map[core.Action]bool),
	}
}

// holdable reports whether an action models a key held down.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionJump, core.ActionDuck, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if holdable(a) {
		h.pressed[a] = now
		return
	}
	h.pending[a] = true
}

// Frame returns the actions active at now and consumes one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range h.pressed {
		if now.Sub(at) > h.window {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	for a := range h.pending {
		frame.Set(a)
		delete(h.pending, a)
	}
	return frame
}

// Release drops every held and pending action.
func (h *HeldKeys) Release() {
	clear(h.pressed)
	clear(h.pending)
}
