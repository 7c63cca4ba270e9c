package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// KeyMap defines the key bindings of the race view.
type KeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("click/r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a race event.
// A restart key behaves like a primary click; other keys pass through as
// key events, which the loop ignores.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent()
	case key.Matches(msg, k.Restart):
		return core.ClickEvent(core.MouseLeft, core.Vec2{})
	}
	return core.KeyEvent(msg.String())
}

// MapMouse translates a mouse message to a race event. Only presses count;
// the cell is converted to world coordinates through the screen.
func MapMouse(msg tea.MouseMsg, screen *core.Screen) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Event{}, false
	}

	var button core.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.MouseLeft
	case tea.MouseButtonMiddle:
		button = core.MouseMiddle
	case tea.MouseButtonRight:
		button = core.MouseRight
	default:
		return core.Event{}, false
	}

	return core.ClickEvent(button, screen.CellCenter(msg.X, msg.Y)), true
}
