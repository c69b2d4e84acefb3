package harpoon

import "github.com/Nacho114/harpoon/internal/model"

// Session is the navigation state machine: a cursor over the list plus the
// reducer that maps logical keys to commands.
//
// Cursor invariant: 0 <= cursor < list.Len() whenever the list is non-empty,
// and cursor == 0 when it is empty. Every mutation re-clamps.
type Session struct {
	list     *List
	cursor   int
	snapshot model.Snapshot
	focused  model.PaneInfo
	hasFocus bool
}

// NewSession wraps a list in a fresh session with the cursor at the top.
func NewSession(list *List) *Session {
	return &Session{list: list}
}

// List returns the underlying favorites list.
func (s *Session) List() *List {
	return s.list
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() int {
	return s.cursor
}

// ObserveSnapshot records the latest registry snapshot. The session keeps it
// so add and add-all know which panes exist and which one is focused. The
// caller reconciles the list against the snapshot before calling this; the
// session only re-clamps the cursor afterwards.
func (s *Session) ObserveSnapshot(snap model.Snapshot) {
	s.snapshot = snap
	if info, ok := snap.Focused(); ok {
		s.focused = info
		s.hasFocus = true
	} else {
		s.hasFocus = false
	}
	s.clamp()
}

// FocusOn moves the cursor to the entry for ref, if it is in the list.
func (s *Session) FocusOn(ref model.PaneRef) {
	if i := s.list.Index(ref); i >= 0 {
		s.cursor = i
	}
}

// HandleKey applies one logical key and returns the resulting command, or
// nil when the key produced neither a redraw nor a host action. Boundary
// conditions (empty list, cursor at an edge, duplicate add) are silent
// no-ops; the reducer never panics.
func (s *Session) HandleKey(k Key) Command {
	switch k {
	case KeyUp:
		if s.cursor > 0 {
			s.cursor--
		}
		return s.render()
	case KeyDown:
		if s.cursor < s.list.Len()-1 {
			s.cursor++
		}
		return s.render()
	case KeyAdd:
		if !s.hasFocus {
			return nil
		}
		wasEmpty := s.list.Len() == 0
		if s.list.Add(s.focused) && wasEmpty {
			s.cursor = 0
		}
		return s.render()
	case KeyAddAll:
		for _, p := range s.snapshot.Panes {
			s.list.Add(p)
		}
		s.clamp()
		return s.render()
	case KeyRemove:
		s.list.RemoveAt(s.cursor)
		s.clamp()
		return s.render()
	case KeyConfirm, KeyCancel:
		// Accepted but inert: removal is immediate, nothing to confirm.
		return nil
	case KeySelect:
		if e, ok := s.list.At(s.cursor); ok {
			return FocusPane{Ref: e.Ref}
		}
		return nil
	case KeyExit:
		return CloseOverlay{}
	default:
		return nil
	}
}

// Rows returns the current list as render rows, marking the cursor entry.
func (s *Session) Rows() []Row {
	entries := s.list.Entries()
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{Name: e.DisplayName(), Selected: i == s.cursor}
	}
	return rows
}

func (s *Session) render() Command {
	return RenderList{Rows: s.Rows()}
}

func (s *Session) clamp() {
	if n := s.list.Len(); n == 0 {
		s.cursor = 0
	} else if s.cursor >= n {
		s.cursor = n - 1
	}
}
