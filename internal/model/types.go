package model

// PaneRef identifies a live pane within a multiplexer session.
//
// Both identifiers are opaque strings assigned by the host multiplexer
// (for tmux: "%5" and "@2"). A PaneRef is immutable once captured and
// equality is by identifier, never by display name.
type PaneRef struct {
	// PaneID is the session-unique pane identifier.
	PaneID string
	// TabID is the identifier of the window/tab containing the pane.
	TabID string
}

// PaneInfo is one live pane as reported by a registry snapshot.
type PaneInfo struct {
	Ref PaneRef
	// Tab is the current name of the containing window/tab.
	Tab string
	// Title is the current pane title.
	Title string
	// Active marks the pane the user is currently focused on.
	Active bool
}

// DisplayName renders the pane as shown in the favorites list.
func (p PaneInfo) DisplayName() string {
	return p.Tab + " | " + p.Title
}

// Snapshot is a point-in-time enumeration of live panes supplied by the
// host. The core only ever reads it.
type Snapshot struct {
	Panes []PaneInfo
}

// Live returns the set of refs present in the snapshot.
func (s Snapshot) Live() map[PaneRef]struct{} {
	live := make(map[PaneRef]struct{}, len(s.Panes))
	for _, p := range s.Panes {
		live[p.Ref] = struct{}{}
	}
	return live
}

// Lookup returns the pane info for ref, if present.
func (s Snapshot) Lookup(ref PaneRef) (PaneInfo, bool) {
	for _, p := range s.Panes {
		if p.Ref == ref {
			return p, true
		}
	}
	return PaneInfo{}, false
}

// WithoutPane returns a copy of the snapshot with the pane identified by
// paneID removed. The overlay uses this to hide its own pane, the same way
// the registry hides plugin panes from ordinary listings.
func (s Snapshot) WithoutPane(paneID string) Snapshot {
	if paneID == "" {
		return s
	}
	panes := make([]PaneInfo, 0, len(s.Panes))
	for _, p := range s.Panes {
		if p.Ref.PaneID == paneID {
			continue
		}
		panes = append(panes, p)
	}
	return Snapshot{Panes: panes}
}

// Focused returns the pane the user is working in. When the overlay itself
// holds focus no other pane is marked active, so it falls back to the first
// pane in the snapshot.
func (s Snapshot) Focused() (PaneInfo, bool) {
	for _, p := range s.Panes {
		if p.Active {
			return p, true
		}
	}
	if len(s.Panes) > 0 {
		return s.Panes[0], true
	}
	return PaneInfo{}, false
}

// Bookmark is the persisted form of a favorites entry. Pane and window IDs
// do not survive a multiplexer restart, so entries are saved by name and
// re-matched against live panes on load.
type Bookmark struct {
	TabName   string
	PaneTitle string
}
