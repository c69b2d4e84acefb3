// Package overlay runs the interactive favorites list on top of the
// multiplexer: it polls registry snapshots, feeds key presses to the
// navigation session, and executes the commands the session emits.
package overlay

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nacho114/harpoon/internal/harpoon"
	"github.com/Nacho114/harpoon/internal/logging"
	"github.com/Nacho114/harpoon/internal/model"
	"github.com/Nacho114/harpoon/internal/mux"
	"github.com/Nacho114/harpoon/internal/otel"
	"github.com/Nacho114/harpoon/internal/reconcile"
	"github.com/Nacho114/harpoon/internal/store"
)

// messages
type snapshotMsg struct {
	snap model.Snapshot
	err  error
}

type tickMsg struct{}

// TUI runs the interactive overlay.
type TUI struct {
	Mux             mux.Multiplexer
	Store           *store.Store // nil disables persistence
	SessionName     string
	Self            model.PaneRef // the overlay's own pane, excluded from listings
	RefreshInterval time.Duration // 0 disables auto-refresh
	ThemeName       string
	Metrics         *otel.Metrics
}

// model implements tea.Model
type tuiModel struct {
	ctx             context.Context
	mux             mux.Multiplexer
	store           *store.Store
	sessionName     string
	self            model.PaneRef
	refreshInterval time.Duration
	metrics         *otel.Metrics

	session *harpoon.Session
	rec     *reconcile.Reconciler

	// firstSync moves the cursor to the focused pane once, on the first
	// snapshot after opening.
	firstSync bool

	// lastSaved avoids rewriting the database when nothing changed.
	lastSaved []model.Bookmark

	styles styles

	// dimensions
	width  int
	height int

	message string
}

func (t *TUI) Run(ctx context.Context) error {
	rec := reconcile.New()
	if t.Store != nil {
		bookmarks, err := t.Store.Load(t.SessionName)
		if err != nil {
			logging.Warn("loading bookmarks failed", "session", t.SessionName, "error", err)
		} else {
			rec.SetPending(bookmarks)
		}
	}

	m := &tuiModel{
		ctx:             ctx,
		mux:             t.Mux,
		store:           t.Store,
		sessionName:     t.SessionName,
		self:            t.Self,
		refreshInterval: t.RefreshInterval,
		metrics:         t.Metrics,
		session:         harpoon.NewSession(harpoon.NewList()),
		rec:             rec,
		firstSync:       true,
		styles:          newStyles(ThemeByName(t.ThemeName)),
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *tuiModel) Init() tea.Cmd {
	return m.doSnapshot()
}

// scheduleTick returns a tea.Cmd that sends a tickMsg after the refresh interval.
// Returns nil if auto-refresh is disabled (interval <= 0).
func (m *tuiModel) scheduleTick() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *tuiModel) doSnapshot() tea.Cmd {
	mx := m.mux
	ctx := m.ctx
	return func() tea.Msg {
		snap, err := mx.Snapshot(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.message = fmt.Sprintf("snapshot failed: %v", msg.err)
			logging.Error("snapshot failed", "error", msg.err)
			return m, m.scheduleTick()
		}
		m.metrics.RecordSnapshot(m.ctx)
		m.applySnapshot(msg.snap)
		return m, m.scheduleTick()

	case tickMsg:
		return m, m.doSnapshot()
	}

	return m, nil
}

// applySnapshot reconciles the list against one registry snapshot: the
// overlay's own pane is hidden first, then closed panes are pruned, renamed
// panes refreshed, and pending bookmarks re-attached.
func (m *tuiModel) applySnapshot(snap model.Snapshot) {
	snap = snap.WithoutPane(m.self.PaneID)

	res := m.rec.Apply(m.session.List(), snap)
	if res.Changed() {
		logging.Debug("list reconciled",
			"pruned", res.Pruned, "renamed", res.Renamed, "restored", res.Restored)
		m.metrics.RecordSync(m.ctx, res.Pruned, res.Renamed, res.Restored)
	}
	m.session.ObserveSnapshot(snap)

	if m.firstSync {
		m.firstSync = false
		if focused, ok := snap.Focused(); ok {
			m.session.FocusOn(focused.Ref)
		}
	}

	if res.Changed() {
		m.persist()
	}
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	switch s {
	case "ctrl+c":
		return m, tea.Quit
	case "r":
		m.message = ""
		return m, m.doSnapshot()
	}

	k, ok := keys.logicalKey(s)
	if !ok {
		return m, nil
	}

	before := m.session.List().Len()
	cmd := m.session.HandleKey(k)
	after := m.session.List().Len()

	switch k {
	case harpoon.KeyAdd, harpoon.KeyAddAll:
		m.metrics.RecordAdd(m.ctx, after-before)
	case harpoon.KeyRemove:
		if after < before {
			m.metrics.RecordRemove(m.ctx)
		}
	}
	if after != before {
		m.persist()
	}

	return m.execute(cmd)
}

// execute carries out one command from the session.
func (m *tuiModel) execute(cmd harpoon.Command) (tea.Model, tea.Cmd) {
	switch c := cmd.(type) {
	case harpoon.FocusPane:
		if err := m.mux.FocusPane(m.ctx, c.Ref); err != nil {
			m.message = fmt.Sprintf("jump failed: %v", err)
			logging.Error("focus pane failed", "pane", c.Ref.PaneID, "error", err)
			return m, nil
		}
		m.metrics.RecordJump(m.ctx, "overlay")
		logging.Info("jumped to pane", "pane", c.Ref.PaneID)
		return m, tea.Quit

	case harpoon.CloseOverlay:
		return m, tea.Quit

	case harpoon.RenderList:
		// View reads the session directly; nothing to carry over.
		return m, nil
	}

	return m, nil
}

// persist saves the current bookmarks if they differ from the last save.
// Persistence failures are logged and never interrupt the overlay.
func (m *tuiModel) persist() {
	if m.store == nil {
		return
	}
	// Bookmarks still waiting for their pane to reappear are kept at the
	// tail so they survive the save.
	bookmarks := append(m.session.List().Bookmarks(), m.rec.PendingBookmarks()...)
	if bookmarksEqual(bookmarks, m.lastSaved) {
		return
	}
	if err := m.store.Save(m.sessionName, bookmarks); err != nil {
		logging.Warn("saving bookmarks failed", "session", m.sessionName, "error", err)
		return
	}
	m.lastSaved = bookmarks
}

func bookmarksEqual(a, b []model.Bookmark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *tuiModel) View() string {
	var b strings.Builder

	rows := m.session.Rows()

	b.WriteString(m.renderHeader(len(rows)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(m.styles.dim.Render("  no panes harpooned yet, press 'a' to add the current one"))
		b.WriteString("\n")
	}
	for _, row := range rows {
		if row.Selected {
			b.WriteString(m.styles.selected.Render("> " + row.Name))
		} else {
			b.WriteString(m.styles.entry.Render("  " + row.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHints())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.styles.dim.Render("  " + m.message))
		b.WriteString("\n")
	}

	return b.String()
}

// renderHeader renders the "==== N panes ====" banner, centered when the
// terminal width is known.
func (m *tuiModel) renderHeader(n int) string {
	noun := "panes"
	if n == 1 {
		noun = "pane"
	}
	header := fmt.Sprintf("==== %d %s ====", n, noun)
	if pad := (m.width - len(header)) / 2; pad > 0 {
		header = strings.Repeat(" ", pad) + header
	}
	return m.styles.header.Render(header)
}

// renderHints renders the key hint line, shrinking with terminal width.
func (m *tuiModel) renderHints() string {
	type hint struct{ key, desc string }

	var hints []hint
	switch {
	case m.width >= 80:
		hints = []hint{
			{"a", "add"}, {"A", "add all"}, {"d", "remove"},
			{"enter", "jump"}, {"j/k", "move"}, {"r", "refresh"}, {"q", "quit"},
		}
	case m.width >= 50:
		hints = []hint{
			{"a", "add"}, {"A", "all"}, {"d", "del"},
			{"enter", "jump"}, {"q", "quit"},
		}
	default:
		hints = []hint{{"a", "add"}, {"d", "del"}, {"q", "quit"}}
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = m.styles.hintKey.Render(h.key) + " " + m.styles.hintDesc.Render(h.desc)
	}
	return "  " + strings.Join(parts, m.styles.dim.Render("  "))
}
