package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionRight, t0)

	if f := h.Frame(t0.Add(50 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("right should be held inside the window")
	}
	if f := h.Frame(t0.Add(100 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("right should be held at the window edge")
	}
	if f := h.Frame(t0.Add(101 * time.Millisecond)); f.Has(core.ActionRight) {
		t.Error("right should be released after the window")
	}
}

func TestHeldKeysRepeatExtendsHold(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionDuck, t0)
	h.Press(core.ActionDuck, t0.Add(80*time.Millisecond))

	if f := h.Frame(t0.Add(150 * time.Millisecond)); !f.Has(core.ActionDuck) {
		t.Error("a repeat press should extend the hold")
	}
}

func TestHeldKeysOneShotActions(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionJump, t0)

	f := h.Frame(t0)
	if !f.Has(core.ActionPause) || !f.Has(core.ActionJump) {
		t.Fatal("both actions should be active on the first frame")
	}

	f = h.Frame(t0.Add(16 * time.Millisecond))
	if f.Has(core.ActionPause) {
		t.Error("pause should fire exactly once")
	}
	if !f.Has(core.ActionJump) {
		t.Error("jump is held for the window")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(0)
	if h.window != DefaultHoldWindow {
		t.Errorf("window = %v, expected default", h.window)
	}

	t0 := time.Unix(0, 0)
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRestart, t0)
	h.Press(core.ActionNone, t0)
	h.Release()

	if f := h.Frame(t0); len(f.Actions) != 0 {
		t.Errorf("frame after release = %v", f.Actions)
	}
}
