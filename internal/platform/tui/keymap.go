package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// KeyMap holds the key bindings of the game screen. It implements
// help.KeyMap for the footer.
type KeyMap struct {
	North     key.Binding
	South     key.Binding
	West      key.Binding
	East      key.Binding
	Stop      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Autopilot key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns arrows, WASD and vim keys for movement.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		North: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "north"),
		),
		South: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "south"),
		),
		West: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "west"),
		),
		East: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "east"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "stop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Autopilot: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "autopilot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the collapsed footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Autopilot, k.Help, k.Quit}
}

// FullHelp returns every binding grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.South, k.West, k.East},
		{k.Stop, k.Autopilot},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// Action translates a key message to a game action. Help has no action and
// maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.North):
		return core.ActionNorth
	case key.Matches(msg, k.South):
		return core.ActionSouth
	case key.Matches(msg, k.West):
		return core.ActionWest
	case key.Matches(msg, k.East):
		return core.ActionEast
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Autopilot):
		return core.ActionAutopilot
	}
	return core.ActionNone
}
