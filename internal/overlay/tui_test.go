package overlay

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nacho114/harpoon/internal/harpoon"
	"github.com/Nacho114/harpoon/internal/model"
	"github.com/Nacho114/harpoon/internal/reconcile"
)

// newTestModel creates a tuiModel with the given panes already observed, the
// first one focused. No store and no multiplexer are attached.
func newTestModel(panes ...model.PaneInfo) *tuiModel {
	m := &tuiModel{
		ctx:     context.Background(),
		session: harpoon.NewSession(harpoon.NewList()),
		rec:     reconcile.New(),
		styles:  newStyles(DarkTheme()),
		width:   80,
		height:  24,
	}
	if len(panes) > 0 {
		panes[0].Active = true
		m.applySnapshot(model.Snapshot{Panes: panes})
	}
	return m
}

func pane(id, tab, title string) model.PaneInfo {
	return model.PaneInfo{
		Ref:   model.PaneRef{PaneID: id, TabID: "@" + id},
		Tab:   tab,
		Title: title,
	}
}

func press(m *tuiModel, runes string) {
	m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)})
}

func TestAddKeyHarpoonsFocusedPane(t *testing.T) {
	m := newTestModel(pane("%1", "code", "vim"), pane("%2", "logs", "tail"))

	press(m, "a")
	if m.session.List().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.session.List().Len())
	}
	e, _ := m.session.List().At(0)
	if e.Ref.PaneID != "%1" {
		t.Errorf("added %s, want the focused pane %%1", e.Ref.PaneID)
	}
}

func TestAddAllKeyHarpoonsEveryPane(t *testing.T) {
	m := newTestModel(pane("%1", "a", "x"), pane("%2", "b", "y"), pane("%3", "c", "z"))

	press(m, "A")
	if m.session.List().Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.session.List().Len())
	}
}

func TestRemoveKeyDropsCursorEntry(t *testing.T) {
	m := newTestModel(pane("%1", "a", "x"), pane("%2", "b", "y"))
	press(m, "A")

	press(m, "d")
	if m.session.List().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.session.List().Len())
	}
}

func TestNavigationKeys(t *testing.T) {
	m := newTestModel(pane("%1", "a", "x"), pane("%2", "b", "y"), pane("%3", "c", "z"))
	press(m, "A")
	m.session.FocusOn(model.PaneRef{PaneID: "%1", TabID: "@%1"})

	press(m, "j")
	if got := m.session.Cursor(); got != 1 {
		t.Errorf("cursor after j = %d, want 1", got)
	}
	press(m, "k")
	if got := m.session.Cursor(); got != 0 {
		t.Errorf("cursor after k = %d, want 0", got)
	}
	// Arrow keys behave like j/k.
	m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.session.Cursor(); got != 1 {
		t.Errorf("cursor after down = %d, want 1", got)
	}
}

func TestExitKeysQuit(t *testing.T) {
	for _, k := range []string{"q", "c"} {
		m := newTestModel()
		_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		if cmd == nil {
			t.Errorf("%q should quit the overlay", k)
		}
	}

	m := newTestModel()
	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit the overlay")
	}
}

func TestFirstSnapshotFocusFollowsActivePane(t *testing.T) {
	m := &tuiModel{
		ctx:       context.Background(),
		session:   harpoon.NewSession(harpoon.NewList()),
		rec:       reconcile.New(),
		styles:    newStyles(DarkTheme()),
		firstSync: true,
	}
	m.rec.SetPending([]model.Bookmark{
		{TabName: "a", PaneTitle: "x"},
		{TabName: "b", PaneTitle: "y"},
	})

	active := pane("%2", "b", "y")
	active.Active = true
	m.applySnapshot(model.Snapshot{Panes: []model.PaneInfo{pane("%1", "a", "x"), active}})

	// Both bookmarks restored, cursor on the focused pane's entry.
	if m.session.List().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.session.List().Len())
	}
	e, _ := m.session.List().At(m.session.Cursor())
	if e.Ref.PaneID != "%2" {
		t.Errorf("cursor on %s, want the focused pane %%2", e.Ref.PaneID)
	}
}

func TestSnapshotHidesOverlayPane(t *testing.T) {
	m := newTestModel()
	m.self = model.PaneRef{PaneID: "%9", TabID: "@9"}

	self := pane("%9", "overlay", "harpoon")
	self.Active = true
	m.applySnapshot(model.Snapshot{Panes: []model.PaneInfo{self, pane("%1", "code", "vim")}})

	// The overlay pane never becomes the add target.
	press(m, "a")
	e, ok := m.session.List().At(0)
	if !ok || e.Ref.PaneID != "%1" {
		t.Errorf("added %v, want the non-self pane %%1", e)
	}
}

func TestViewHeaderCountsPanes(t *testing.T) {
	m := newTestModel(pane("%1", "a", "x"), pane("%2", "b", "y"))
	press(m, "A")

	view := m.View()
	if !strings.Contains(view, "==== 2 panes ====") {
		t.Errorf("view missing header:\n%s", view)
	}
}

func TestViewSingularHeader(t *testing.T) {
	m := newTestModel(pane("%1", "a", "x"))
	press(m, "a")

	if view := m.View(); !strings.Contains(view, "==== 1 pane ====") {
		t.Errorf("view missing singular header:\n%s", view)
	}
}

func TestViewEmptyListShowsHint(t *testing.T) {
	m := newTestModel()
	if view := m.View(); !strings.Contains(view, "press 'a'") {
		t.Errorf("empty view missing add hint:\n%s", view)
	}
}

func TestHintsShrinkWithWidth(t *testing.T) {
	m := newTestModel()

	m.width = 100
	wide := m.renderHints()
	if !strings.Contains(wide, "refresh") {
		t.Errorf("wide hints missing refresh: %q", wide)
	}

	m.width = 60
	medium := m.renderHints()
	if strings.Contains(medium, "refresh") {
		t.Errorf("medium hints should drop refresh: %q", medium)
	}

	m.width = 30
	narrow := m.renderHints()
	if strings.Contains(narrow, "jump") {
		t.Errorf("narrow hints should drop jump: %q", narrow)
	}
}

func TestLogicalKeyMapping(t *testing.T) {
	tests := []struct {
		key  string
		want harpoon.Key
		ok   bool
	}{
		{"k", harpoon.KeyUp, true},
		{"up", harpoon.KeyUp, true},
		{"j", harpoon.KeyDown, true},
		{"a", harpoon.KeyAdd, true},
		{"A", harpoon.KeyAddAll, true},
		{"d", harpoon.KeyRemove, true},
		{"enter", harpoon.KeySelect, true},
		{"l", harpoon.KeySelect, true},
		{"esc", harpoon.KeyExit, true},
		{"q", harpoon.KeyExit, true},
		{"x", 0, false},
	}

	for _, tt := range tests {
		got, ok := keys.logicalKey(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("logicalKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
