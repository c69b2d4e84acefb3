package mux

import (
	"testing"

	"github.com/Nacho114/harpoon/internal/model"
)

func TestParseSnapshot(t *testing.T) {
	out := "%0\t@0\tcode\tvim\t1\t1\n" +
		"%1\t@0\tcode\tzsh\t0\t1\n" +
		"%2\t@1\tlogs\ttail -f app.log\t1\t0\n"

	snap := parseSnapshot(out)
	if len(snap.Panes) != 3 {
		t.Fatalf("got %d panes, want 3", len(snap.Panes))
	}

	want := []model.PaneInfo{
		{Ref: model.PaneRef{PaneID: "%0", TabID: "@0"}, Tab: "code", Title: "vim", Active: true},
		{Ref: model.PaneRef{PaneID: "%1", TabID: "@0"}, Tab: "code", Title: "zsh"},
		// Active pane in an inactive window is not the focused pane.
		{Ref: model.PaneRef{PaneID: "%2", TabID: "@1"}, Tab: "logs", Title: "tail -f app.log"},
	}
	for i, w := range want {
		if snap.Panes[i] != w {
			t.Errorf("pane %d = %+v, want %+v", i, snap.Panes[i], w)
		}
	}
}

func TestParseSnapshotEmptyTitle(t *testing.T) {
	snap := parseSnapshot("%0\t@0\tcode\t\t1\t1\n")
	if len(snap.Panes) != 1 {
		t.Fatalf("got %d panes, want 1", len(snap.Panes))
	}
	if snap.Panes[0].Title != "" {
		t.Errorf("Title = %q, want empty", snap.Panes[0].Title)
	}
}

func TestParseSnapshotSkipsMalformedLines(t *testing.T) {
	out := "garbage\n" +
		"%0\t@0\tcode\tvim\t1\t1\n" +
		"%1\t@0\n"

	snap := parseSnapshot(out)
	if len(snap.Panes) != 1 {
		t.Fatalf("got %d panes, want 1", len(snap.Panes))
	}
	if snap.Panes[0].Ref.PaneID != "%0" {
		t.Errorf("PaneID = %s, want %%0", snap.Panes[0].Ref.PaneID)
	}
}

func TestParseSnapshotEmptyOutput(t *testing.T) {
	for _, out := range []string{"", "\n"} {
		if snap := parseSnapshot(out); len(snap.Panes) != 0 {
			t.Errorf("parseSnapshot(%q) = %d panes, want 0", out, len(snap.Panes))
		}
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		wantErr bool
	}{
		{name: "tmux", arg: "tmux", wantErr: false},
		{name: "zellij unimplemented", arg: "zellij", wantErr: true},
		{name: "unknown", arg: "screen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromName(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromName(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err == nil && m.Name() != tt.arg {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.arg)
			}
		})
	}
}
