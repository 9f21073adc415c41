package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump
	ActionDuck           // S, Down, Enter - slide on the ground, dive in the air, drop into holes
	ActionLeft           // A, Left - run backwards
	ActionRight          // D, Right - boost forward
	ActionPause          // P - pause/unpause game
	ActionRestart        // R, Enter after game over - restart
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a lower-case action name back to its Action.
// Unknown names return ActionNone.
func ParseAction(name string) Action {
	switch name {
	case "jump", "up":
		return ActionJump
	case "duck", "down", "slide":
		return ActionDuck
	case "left":
		return ActionLeft
	case "right":
		return ActionRight
	case "pause":
		return ActionPause
	case "restart":
		return ActionRestart
	case "quit":
		return ActionQuit
	default:
		return ActionNone
	}
}

// InputFrame is the set of actions held during one simulation tick.
// Games treat it as immutable; the platform builds a fresh one per tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool, len(actions)),
	}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
