package tui

import (
	"time"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

// HoldWindow is how long a steering key counts as held after its last
// key event. Terminals report presses and autorepeat but never releases,
// so the window must outlast the autorepeat interval.
const HoldWindow = 180 * time.Millisecond

// holdTracker emulates level-triggered keys on top of key press events.
type holdTracker struct {
	window time.Duration
	until  map[core.Action]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// press marks the action held until now+window.
// Pressing one steering direction releases the other.
func (h *holdTracker) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now.Add(h.window)
}

// held reports whether the action is still inside its hold window.
func (h *holdTracker) held(a core.Action, now time.Time) bool {
	deadline, ok := h.until[a]
	if !ok {
		return false
	}
	if now.After(deadline) {
		delete(h.until, a)
		return false
	}
	return true
}

// apply adds every action still held at now to the frame.
func (h *holdTracker) apply(frame *core.InputFrame, now time.Time) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.held(a, now) {
			frame.Set(a)
		}
	}
}

// reset releases every key.
func (h *holdTracker) reset() {
	clear(h.until)
}
