// Package mux provides an abstraction over terminal multiplexers (tmux,
// zellij). It is pure transport: it enumerates panes and moves focus, and
// leaves every decision about the list to the caller.
package mux

import (
	"context"

	"github.com/Nacho114/harpoon/internal/model"
)

// Multiplexer abstracts terminal multiplexer operations.
// Implementations exist for tmux and (future) zellij.
type Multiplexer interface {
	// Name returns the multiplexer name (e.g., "tmux", "zellij").
	Name() string

	// Snapshot enumerates all live panes in one call.
	Snapshot(ctx context.Context) (model.Snapshot, error)

	// FocusPane gives focus to the referenced pane, switching session,
	// window, and pane as needed.
	FocusPane(ctx context.Context, ref model.PaneRef) error

	// SessionName returns the name of the session the caller runs in.
	// Persistence is scoped per session.
	SessionName(ctx context.Context) (string, error)

	// Self resolves the pane the current process runs in, so the overlay
	// can exclude itself from listings. A zero ref with nil error means
	// the process is not attached to a pane.
	Self(ctx context.Context) (model.PaneRef, error)
}
