package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer taps. Frontends translate raw events into actions; the simulation
// only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionDashLeft         // Left arrow, A, tap on the left half
	ActionDashRight        // Right arrow, D, tap on the right half
	ActionJump             // Space, Up, W, tap near the top
	ActionPause            // P - pause/unpause game
	ActionRestart          // R - restart the run at any time
	ActionStart            // Enter - start from the title or game over screen
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionShare            // C - copy the share text after a run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDashLeft:
		return "DashLeft"
	case ActionDashRight:
		return "DashRight"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionShare:
		return "Share"
	default:
		return "Unknown"
	}
}

// InputFrame collects the gameplay actions received between two frames.
// Actions are kept in arrival order so that two dashes issued before the
// next frame both take effect.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
