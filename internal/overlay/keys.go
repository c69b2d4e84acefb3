package overlay

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/Nacho114/harpoon/internal/harpoon"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	AddAll  key.Binding
	Remove  key.Binding
	Select  key.Binding
	Exit    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
	),
	AddAll: key.NewBinding(
		key.WithKeys("A"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "l"),
	),
	Exit: key.NewBinding(
		key.WithKeys("esc", "q", "c"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// logicalKey maps a physical key press to the logical key the session
// understands. The second return is false for keys the session does not
// handle (refresh, quit), which the overlay deals with itself.
func (k keyMap) logicalKey(s string) (harpoon.Key, bool) {
	pressed := func(b key.Binding) bool {
		for _, kk := range b.Keys() {
			if kk == s {
				return true
			}
		}
		return false
	}

	switch {
	case pressed(k.Up):
		return harpoon.KeyUp, true
	case pressed(k.Down):
		return harpoon.KeyDown, true
	case pressed(k.Add):
		return harpoon.KeyAdd, true
	case pressed(k.AddAll):
		return harpoon.KeyAddAll, true
	case pressed(k.Remove):
		return harpoon.KeyRemove, true
	case pressed(k.Select):
		return harpoon.KeySelect, true
	case pressed(k.Exit):
		return harpoon.KeyExit, true
	}
	return 0, false
}
