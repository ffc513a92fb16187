package control

import "fmt"

// EventKind identifies a decoded input event.
type EventKind int

const (
	// EventNone is the zero event; it is ignored.
	EventNone EventKind = iota
	// EventPointerDown is a primary-button press at a display pixel.
	EventPointerDown
	// EventPointerDrag is pointer motion while the primary button is held.
	EventPointerDrag
	// EventPointerUp is a primary-button release.
	EventPointerUp
	// EventKeyPress carries one of the Key commands.
	EventKeyPress
	// EventWindowClose is a request from the window system to close.
	EventWindowClose
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerDrag:
		return "pointer-drag"
	case EventPointerUp:
		return "pointer-up"
	case EventKeyPress:
		return "key-press"
	case EventWindowClose:
		return "window-close"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Key is a semantic keyboard command.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyToggleRun
	KeyStepOnce
	KeyClear
	KeyRandomize
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyQuit:
		return "quit"
	case KeyToggleRun:
		return "toggle-run"
	case KeyStepOnce:
		return "step-once"
	case KeyClear:
		return "clear"
	case KeyRandomize:
		return "randomize"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Event is a decoded input event. X and Y are display pixels and only
// meaningful for pointer events.
type Event struct {
	Kind EventKind
	X, Y int
	Key  Key
}

// PointerDown returns a press event at pixel (x, y).
func PointerDown(x, y int) Event { return Event{Kind: EventPointerDown, X: x, Y: y} }

// PointerDrag returns a drag-while-pressed event at pixel (x, y).
func PointerDrag(x, y int) Event { return Event{Kind: EventPointerDrag, X: x, Y: y} }

// PointerUp returns a release event.
func PointerUp() Event { return Event{Kind: EventPointerUp} }

// KeyPress returns a key command event.
func KeyPress(k Key) Event { return Event{Kind: EventKeyPress, Key: k} }

// WindowClose returns a close request.
func WindowClose() Event { return Event{Kind: EventWindowClose} }
