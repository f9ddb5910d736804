package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/camelrace/internal/core"
)

// KeyMap defines the key bindings for a running race.
type KeyMap struct {
	Advance key.Binding
	NewRace key.Binding
	Reset   key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Nudge   [5]key.Binding
	Pause   key.Binding
	Events  key.Binding
	Up      key.Binding
	Down    key.Binding
	Save    key.Binding
	Back    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.NewRace, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.NewRace, k.Reset, k.Pause},
		{k.Left, k.Right, k.Toggle},
		{k.Nudge[0], k.Nudge[1], k.Nudge[2], k.Nudge[3], k.Nudge[4]},
		{k.Events, k.Up, k.Down, k.Save},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Advance: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "roll"),
		),
		NewRace: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new race"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "line-up"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor back"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor forward"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle marker"),
		),
		Nudge: [5]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "nudge white")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "nudge orange")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "nudge yellow")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "nudge green")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "nudge blue")),
		},
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause autoplay"),
		),
		Events: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "event log"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll log up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll log down"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Advance):
		return core.ActionAdvance, false
	case key.Matches(msg, k.NewRace):
		return core.ActionNewRace, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Left):
		return core.ActionCursorLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionCursorRight, false
	case key.Matches(msg, k.Toggle):
		return core.ActionToggleModifier, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}
	for i, b := range k.Nudge {
		if key.Matches(msg, b) {
			return core.NudgeActions[i], false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
