// Package harpoon holds the favorites-list core: the ordered pane list and
// the navigation state machine that turns logical key events into commands.
//
// The package is deliberately host-free. It never talks to a multiplexer or
// a terminal; it consumes model.Snapshot values and emits Commands, so every
// behavior can be tested against literal inputs.
package harpoon

import "github.com/Nacho114/harpoon/internal/model"

// Key is a logical input event. The overlay maps physical keys to these.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyAdd
	KeyAddAll
	KeyRemove
	KeyConfirm
	KeyCancel
	KeySelect
	KeyExit
)

// String returns the logical key name, for logs.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyAdd:
		return "add"
	case KeyAddAll:
		return "add-all"
	case KeyRemove:
		return "remove"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeySelect:
		return "select"
	case KeyExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Command is an instruction to the host. The core never executes anything
// itself; it hands one of these back from HandleKey.
type Command interface {
	command()
}

// FocusPane asks the host to give focus to the referenced pane.
type FocusPane struct {
	Ref model.PaneRef
}

// RenderList asks the host to redraw the list.
type RenderList struct {
	Rows []Row
}

// CloseOverlay asks the host to dismiss the overlay.
type CloseOverlay struct{}

func (FocusPane) command()    {}
func (RenderList) command()   {}
func (CloseOverlay) command() {}

// Row is one rendered list line.
type Row struct {
	Name     string
	Selected bool
}
