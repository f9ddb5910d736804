package core

// Action is a semantic intent, abstracted from physical key presses.
type Action int

const (
	ActionNone           Action = iota
	ActionAdvance               // Space, Enter - roll the next die
	ActionNewRace               // N - start a new race
	ActionCursorLeft            // Left, H - move the cell cursor back
	ActionCursorRight           // Right, L - move the cell cursor forward
	ActionToggleModifier        // T - cycle the marker under the cursor
	ActionNudge1                // 1..5 - nudge a camel one cell
	ActionNudge2
	ActionNudge3
	ActionNudge4
	ActionNudge5
	ActionPause // P - pause/resume autoplay
	ActionReset // R - back to the initial line-up
	ActionQuit  // Q, Ctrl+C
)

// NudgeActions lists the nudge intents in camel order.
var NudgeActions = [...]Action{ActionNudge1, ActionNudge2, ActionNudge3, ActionNudge4, ActionNudge5}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAdvance:
		return "Advance"
	case ActionNewRace:
		return "NewRace"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionToggleModifier:
		return "ToggleModifier"
	case ActionNudge1, ActionNudge2, ActionNudge3, ActionNudge4, ActionNudge5:
		return "Nudge"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick.
type InputFrame struct {
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
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
