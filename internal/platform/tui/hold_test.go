package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(100 * time.Millisecond)
	t0 := epoch

	if h.held(core.ActionLeft, t0) {
		t.Fatal("nothing pressed yet")
	}

	h.press(core.ActionLeft, t0)
	if !h.held(core.ActionLeft, t0.Add(100*time.Millisecond)) {
		t.Error("held at the window edge")
	}
	if h.held(core.ActionLeft, t0.Add(101*time.Millisecond)) {
		t.Error("still held after the window")
	}

	// Autorepeat extends the window.
	h.press(core.ActionRight, t0)
	h.press(core.ActionRight, t0.Add(90*time.Millisecond))
	if !h.held(core.ActionRight, t0.Add(150*time.Millisecond)) {
		t.Error("repeat did not extend the window")
	}

	h.reset()
	if h.held(core.ActionRight, t0.Add(150*time.Millisecond)) {
		t.Error("reset did not release keys")
	}
}

func TestHoldTrackerApply(t *testing.T) {
	h := newHoldTracker(HoldWindow)
	h.press(core.ActionLeft, epoch)
	h.press(core.ActionRight, epoch)

	frame := core.NewInputFrame()
	h.apply(&frame, epoch)
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released by the right press")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("right should be held")
	}
	if frame.Has(core.ActionFire) {
		t.Error("apply must only add steering actions")
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(30); got != time.Second/30 {
		t.Errorf("tickInterval(30) = %v", got)
	}
	if got := tickInterval(0); got != time.Second/60 {
		t.Errorf("tickInterval(0) = %v, want 60 fps fallback", got)
	}
}
