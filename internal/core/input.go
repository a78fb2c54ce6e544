package core

// Action is a semantic input the platform delivers to a game,
// independent of which physical key produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Steer left (level: present while held)
	ActionRight          // Steer right (level: present while held)
	ActionFire           // Shoot (edge: once per key press)
	ActionPause          // Toggle pause
	ActionRestart        // New session after game over
	ActionQuit           // Leave the game
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions delivered to one simulation tick.
// Steering actions are present while the key is held; other actions are
// present only on the tick their key was pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as present in this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is present. A zero frame has none.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes every action, keeping the map for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
