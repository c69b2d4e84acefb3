package harpoon

import (
	"testing"

	"github.com/Nacho114/harpoon/internal/model"
)

func pane(id, tab, title string) model.PaneInfo {
	return model.PaneInfo{
		Ref:   model.PaneRef{PaneID: id, TabID: "@" + id},
		Tab:   tab,
		Title: title,
	}
}

func TestListAddDedup(t *testing.T) {
	l := NewList()

	if !l.Add(pane("%1", "code", "vim")) {
		t.Fatal("first add should change the list")
	}
	if l.Add(pane("%1", "code", "vim")) {
		t.Error("duplicate add should be a no-op")
	}
	if got := l.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestListAddPreservesInsertionOrder(t *testing.T) {
	l := NewList()
	l.Add(pane("%3", "logs", "tail"))
	l.Add(pane("%1", "code", "vim"))
	l.Add(pane("%2", "build", "make"))

	want := []string{"logs | tail", "code | vim", "build | make"}
	entries := l.Entries()
	if len(entries) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(entries), len(want))
	}
	for i, e := range entries {
		if e.DisplayName() != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.DisplayName(), want[i])
		}
	}
}

func TestListRemoveAt(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantOK  bool
		wantLen int
	}{
		{name: "first", index: 0, wantOK: true, wantLen: 2},
		{name: "last", index: 2, wantOK: true, wantLen: 2},
		{name: "negative", index: -1, wantOK: false, wantLen: 3},
		{name: "past end", index: 3, wantOK: false, wantLen: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.Add(pane("%1", "a", "x"))
			l.Add(pane("%2", "b", "y"))
			l.Add(pane("%3", "c", "z"))

			_, ok := l.RemoveAt(tt.index)
			if ok != tt.wantOK {
				t.Errorf("RemoveAt(%d) ok = %v, want %v", tt.index, ok, tt.wantOK)
			}
			if got := l.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestListRemoveAtKeepsOrder(t *testing.T) {
	l := NewList()
	l.Add(pane("%1", "a", "x"))
	l.Add(pane("%2", "b", "y"))
	l.Add(pane("%3", "c", "z"))

	e, ok := l.RemoveAt(1)
	if !ok || e.Ref.PaneID != "%2" {
		t.Fatalf("RemoveAt(1) = %v, %v", e, ok)
	}
	if l.entries[0].Ref.PaneID != "%1" || l.entries[1].Ref.PaneID != "%3" {
		t.Errorf("survivors out of order: %v", l.entries)
	}
}

func TestListRename(t *testing.T) {
	l := NewList()
	l.Add(pane("%1", "code", "vim"))

	if !l.Rename(pane("%1", "editor", "nvim")) {
		t.Error("rename of tracked pane should report a change")
	}
	if got := l.entries[0].DisplayName(); got != "editor | nvim" {
		t.Errorf("DisplayName() = %q, want %q", got, "editor | nvim")
	}
	if l.Rename(pane("%1", "editor", "nvim")) {
		t.Error("rename with identical names should be a no-op")
	}
	if l.Rename(pane("%9", "other", "other")) {
		t.Error("rename of untracked pane should be a no-op")
	}
}

func TestListPrune(t *testing.T) {
	l := NewList()
	l.Add(pane("%1", "a", "x"))
	l.Add(pane("%2", "b", "y"))
	l.Add(pane("%3", "c", "z"))
	l.Add(pane("%4", "d", "w"))

	snap := model.Snapshot{Panes: []model.PaneInfo{
		pane("%1", "a", "x"),
		pane("%3", "c", "z"),
	}}

	if got := l.Prune(snap.Live()); got != 2 {
		t.Errorf("Prune() = %d, want 2", got)
	}
	// Survivors keep their relative order.
	entries := l.Entries()
	if len(entries) != 2 || entries[0].Ref.PaneID != "%1" || entries[1].Ref.PaneID != "%3" {
		t.Errorf("survivors = %v, want %%1 then %%3", entries)
	}
}

func TestListPruneEmptyLive(t *testing.T) {
	l := NewList()
	l.Add(pane("%1", "a", "x"))
	l.Add(pane("%2", "b", "y"))

	if got := l.Prune(map[model.PaneRef]struct{}{}); got != 2 {
		t.Errorf("Prune() = %d, want 2", got)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestListIndex(t *testing.T) {
	l := NewList()
	a := pane("%1", "a", "x")
	b := pane("%2", "b", "y")
	l.Add(a)
	l.Add(b)

	if got := l.Index(b.Ref); got != 1 {
		t.Errorf("Index(%%2) = %d, want 1", got)
	}
	if got := l.Index(model.PaneRef{PaneID: "%9", TabID: "@9"}); got != -1 {
		t.Errorf("Index(absent) = %d, want -1", got)
	}
}

func TestListBookmarks(t *testing.T) {
	l := NewList()
	l.Add(pane("%1", "code", "vim"))
	l.Add(pane("%2", "logs", "tail"))

	got := l.Bookmarks()
	want := []model.Bookmark{
		{TabName: "code", PaneTitle: "vim"},
		{TabName: "logs", PaneTitle: "tail"},
	}
	if len(got) != len(want) {
		t.Fatalf("Bookmarks() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bookmark %d = %v, want %v", i, got[i], want[i])
		}
	}
}
