package mux

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Nacho114/harpoon/internal/model"
)

// Tmux implements the Multiplexer interface for tmux.
type Tmux struct{}

// NewTmux creates a new tmux multiplexer.
func NewTmux() *Tmux {
	return &Tmux{}
}

// Name returns "tmux".
func (t *Tmux) Name() string {
	return "tmux"
}

// snapshotFormat enumerates everything a pane listing needs in one call:
// pane id, window id, window name, pane title, and the two activity flags
// that together mark the focused pane.
const snapshotFormat = "#{pane_id}\t#{window_id}\t#{window_name}\t#{pane_title}\t#{?pane_active,1,0}\t#{?window_active,1,0}"

// Snapshot returns all panes across all windows of the attached server.
func (t *Tmux) Snapshot(ctx context.Context) (model.Snapshot, error) {
	out, err := t.run(ctx, "list-panes", "-a", "-F", snapshotFormat)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("tmux list-panes: %w", err)
	}
	return parseSnapshot(out), nil
}

// parseSnapshot parses list-panes output into a Snapshot. Malformed lines
// are skipped; tmux titles can legitimately be empty strings.
func parseSnapshot(out string) model.Snapshot {
	var snap model.Snapshot
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 6 {
			continue
		}
		snap.Panes = append(snap.Panes, model.PaneInfo{
			Ref:    model.PaneRef{PaneID: parts[0], TabID: parts[1]},
			Tab:    parts[2],
			Title:  parts[3],
			Active: parts[4] == "1" && parts[5] == "1",
		})
	}
	return snap
}

// FocusPane switches to the window containing the pane and selects it.
// tmux resolves the owning session from the pane id, so switch-client,
// select-window, and select-pane all target by id.
func (t *Tmux) FocusPane(ctx context.Context, ref model.PaneRef) error {
	if _, err := t.run(ctx, "switch-client", "-t", ref.PaneID); err != nil {
		return fmt.Errorf("tmux switch-client -t %s: %w", ref.PaneID, err)
	}
	if _, err := t.run(ctx, "select-window", "-t", ref.TabID); err != nil {
		return fmt.Errorf("tmux select-window -t %s: %w", ref.TabID, err)
	}
	if _, err := t.run(ctx, "select-pane", "-t", ref.PaneID); err != nil {
		return fmt.Errorf("tmux select-pane -t %s: %w", ref.PaneID, err)
	}
	return nil
}

// SessionName returns the name of the session the current client is
// attached to.
func (t *Tmux) SessionName(ctx context.Context) (string, error) {
	out, err := t.run(ctx, "display-message", "-p", "#{session_name}")
	if err != nil {
		return "", fmt.Errorf("tmux display-message: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Self resolves $TMUX_PANE to a full pane ref. Outside tmux it returns a
// zero ref so callers can skip self-exclusion.
func (t *Tmux) Self(ctx context.Context) (model.PaneRef, error) {
	paneID := os.Getenv("TMUX_PANE")
	if paneID == "" {
		return model.PaneRef{}, nil
	}
	out, err := t.run(ctx, "display-message", "-t", paneID, "-p", "#{pane_id}\t#{window_id}")
	if err != nil {
		return model.PaneRef{}, fmt.Errorf("tmux display-message -t %s: %w", paneID, err)
	}
	parts := strings.Split(strings.TrimSpace(out), "\t")
	if len(parts) != 2 {
		return model.PaneRef{}, fmt.Errorf("unexpected display-message output %q", out)
	}
	return model.PaneRef{PaneID: parts[0], TabID: parts[1]}, nil
}

// run executes a tmux command and returns its stdout.
func (t *Tmux) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "tmux", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%w: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
