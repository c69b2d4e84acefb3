package harpoon

import "github.com/Nacho114/harpoon/internal/model"

// Entry is one favorited pane. Tab and Title are cached copies of the
// registry's names; the reconciler refreshes them when the registry changes.
type Entry struct {
	Ref   model.PaneRef
	Tab   string
	Title string
}

// DisplayName renders the entry the same way live panes are rendered.
func (e Entry) DisplayName() string {
	return e.Tab + " | " + e.Title
}

// Bookmark converts the entry to its persisted form.
func (e Entry) Bookmark() model.Bookmark {
	return model.Bookmark{TabName: e.Tab, PaneTitle: e.Title}
}

// List is an ordered collection of favorited panes. Insertion order is
// significant: it is the order entries are displayed and cycled in.
// The invariant maintained by every operation: no two entries share a Ref.
type List struct {
	entries []Entry
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add appends a pane to the list. Adding a pane that is already tracked is a
// no-op; the return value reports whether the list changed.
func (l *List) Add(info model.PaneInfo) bool {
	if l.Index(info.Ref) >= 0 {
		return false
	}
	l.entries = append(l.entries, Entry{Ref: info.Ref, Tab: info.Tab, Title: info.Title})
	return true
}

// RemoveAt deletes the entry at index i, preserving the order of the rest.
// Out-of-range indices are a no-op.
func (l *List) RemoveAt(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	e := l.entries[i]
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return e, true
}

// Rename refreshes the cached tab and title for the entry matching info's
// ref. No-op when the pane is not tracked or nothing changed; the return
// value reports whether an entry was updated.
func (l *List) Rename(info model.PaneInfo) bool {
	i := l.Index(info.Ref)
	if i < 0 {
		return false
	}
	if l.entries[i].Tab == info.Tab && l.entries[i].Title == info.Title {
		return false
	}
	l.entries[i].Tab = info.Tab
	l.entries[i].Title = info.Title
	return true
}

// Prune drops every entry whose ref is not in the live set, keeping the
// survivors in their original order. Returns the number of entries dropped.
func (l *List) Prune(live map[model.PaneRef]struct{}) int {
	kept := l.entries[:0]
	for _, e := range l.entries {
		if _, ok := live[e.Ref]; ok {
			kept = append(kept, e)
		}
	}
	pruned := len(l.entries) - len(kept)
	l.entries = kept
	return pruned
}

// Entries returns a copy of the list in order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i.
func (l *List) At(i int) (Entry, bool) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Index returns the position of ref in the list, or -1 if absent.
func (l *List) Index(ref model.PaneRef) int {
	for i, e := range l.entries {
		if e.Ref == ref {
			return i
		}
	}
	return -1
}

// Bookmarks returns the persisted form of every entry, in order.
func (l *List) Bookmarks() []model.Bookmark {
	out := make([]model.Bookmark, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Bookmark()
	}
	return out
}
