package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionEast            // Right arrow, d, l
	ActionSouth           // Down arrow, s, j
	ActionWest            // Left arrow, a, h
	ActionNorth           // Up arrow, w, k
	ActionStop            // Space - stand still
	ActionPause           // P, Escape
	ActionRestart         // R after the session ended
	ActionAutopilot       // Tab - toggle autopilot
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionEast:
		return "East"
	case ActionSouth:
		return "South"
	case ActionWest:
		return "West"
	case ActionNorth:
		return "North"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionAutopilot:
		return "Autopilot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the agent.
func (a Action) IsDirection() bool {
	return a >= ActionEast && a <= ActionNorth
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool

	// last is the most recent directional action, so two presses inside one
	// tick resolve to the later one.
	last Action
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
	if a.IsDirection() {
		f.last = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the latest directional action of the frame, or
// ActionNone when no direction was pressed.
func (f InputFrame) Direction() Action {
	return f.last
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.last = ActionNone
}
