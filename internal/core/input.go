package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform maps keys (or SSH input) to actions; the
// game only sees intents.
type Action int

const (
	ActionNone      Action = iota
	ActionSteerLeft        // A, Left arrow - steer left
	ActionSteerRight       // D, Right arrow - steer right
	ActionPause            // P, Escape - pause/unpause
	ActionSlowMo           // Shift - hold for slow motion
	ActionRestart          // R - restart after run end
	ActionNewSeed          // N - regenerate seed, hard reset
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionPause:
		return "Pause"
	case ActionSlowMo:
		return "SlowMo"
	case ActionRestart:
		return "Restart"
	case ActionNewSeed:
		return "NewSeed"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation frame.
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
