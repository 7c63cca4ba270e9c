package core

// EventKind identifies the kind of an input event.
type EventKind int

const (
	EventNone      EventKind = iota
	EventQuit                // window close / quit request
	EventMouseDown           // mouse button pressed
	EventKey                 // key pressed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventMouseDown:
		return "MouseDown"
	case EventKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1 // primary button
	MouseMiddle
	MouseRight
)

// Event is a single input event polled from a frontend.
// Pos is the window-relative position in world units for mouse events.
type Event struct {
	Kind   EventKind
	Button MouseButton
	Pos    Vec2
	Key    string
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// ClickEvent returns a mouse press of button at pos.
func ClickEvent(button MouseButton, pos Vec2) Event {
	return Event{Kind: EventMouseDown, Button: button, Pos: pos}
}

// KeyEvent returns a key press.
func KeyEvent(key string) Event {
	return Event{Kind: EventKey, Key: key}
}

// IsPrimaryClick reports whether e is a press of the primary mouse button.
func (e Event) IsPrimaryClick() bool {
	return e.Kind == EventMouseDown && e.Button == MouseLeft
}
