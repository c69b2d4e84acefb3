// Package reconcile keeps the favorites list consistent with the registry:
// closed panes are dropped, renamed panes are refreshed, and bookmarks saved
// in a previous run are re-attached to live panes as they appear.
package reconcile

import (
	"github.com/Nacho114/harpoon/internal/harpoon"
	"github.com/Nacho114/harpoon/internal/model"
)

// Result counts what one Apply changed, for logging and metrics.
type Result struct {
	Pruned   int
	Renamed  int
	Restored int
}

// Changed reports whether Apply mutated the list at all.
func (r Result) Changed() bool {
	return r.Pruned > 0 || r.Renamed > 0 || r.Restored > 0
}

// Reconciler applies registry snapshots to a list. It also carries the
// bookmarks loaded from a previous run until a live pane matching each by
// name shows up.
type Reconciler struct {
	pending []model.Bookmark
}

// New returns a reconciler with no pending bookmarks.
func New() *Reconciler {
	return &Reconciler{}
}

// SetPending replaces the set of bookmarks waiting to be matched. Called
// once at startup with the persisted list for the current session.
func (r *Reconciler) SetPending(bookmarks []model.Bookmark) {
	r.pending = append(r.pending[:0], bookmarks...)
}

// Pending returns how many bookmarks are still waiting for a matching pane.
func (r *Reconciler) Pending() int {
	return len(r.pending)
}

// PendingBookmarks returns a copy of the bookmarks still waiting for a
// matching pane. Callers include these when persisting so a bookmark whose
// pane has not reappeared yet survives the save.
func (r *Reconciler) PendingBookmarks() []model.Bookmark {
	out := make([]model.Bookmark, len(r.pending))
	copy(out, r.pending)
	return out
}

// Apply brings the list in line with one snapshot. Order matters: pruning
// runs before renaming so a closed pane is never renamed, and restoration
// runs last so restored entries are matched against the final live set.
// Name flow is one-directional, registry to list.
func (r *Reconciler) Apply(list *harpoon.List, snap model.Snapshot) Result {
	var res Result

	res.Pruned = list.Prune(snap.Live())

	for _, p := range snap.Panes {
		if list.Rename(p) {
			res.Renamed++
		}
	}

	res.Restored = r.restore(list, snap)
	return res
}

// restore matches pending bookmarks against live panes by (tab name, pane
// title). Each bookmark claims at most one pane, a pane already in the list
// is never claimed, and unmatched bookmarks stay pending for later
// snapshots.
func (r *Reconciler) restore(list *harpoon.List, snap model.Snapshot) int {
	if len(r.pending) == 0 {
		return 0
	}

	claimed := make(map[model.PaneRef]struct{})
	restored := 0
	remaining := r.pending[:0]

	for _, b := range r.pending {
		matched := false
		for _, p := range snap.Panes {
			if p.Tab != b.TabName || p.Title != b.PaneTitle {
				continue
			}
			if _, ok := claimed[p.Ref]; ok {
				continue
			}
			if list.Index(p.Ref) >= 0 {
				continue
			}
			list.Add(p)
			claimed[p.Ref] = struct{}{}
			restored++
			matched = true
			break
		}
		if !matched {
			remaining = append(remaining, b)
		}
	}

	r.pending = remaining
	return restored
}
