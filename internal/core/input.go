package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // A, Left arrow - turn the ship anticlockwise
	ActionRotateRight        // D, Right arrow - turn the ship clockwise
	ActionThrust             // W, Up arrow - fire the engine
	ActionFire               // Space - shoot
	ActionHyperspace         // H, Down arrow - jump to a random position
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R key - restart game after game over
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
	ActionUp                 // menu navigation
	ActionDown               // menu navigation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionHyperspace:
		return "Hyperspace"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
