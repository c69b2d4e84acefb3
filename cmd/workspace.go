package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Nacho114/harpoon/internal/config"
	"github.com/Nacho114/harpoon/internal/harpoon"
	"github.com/Nacho114/harpoon/internal/logging"
	"github.com/Nacho114/harpoon/internal/model"
	"github.com/Nacho114/harpoon/internal/mux"
	"github.com/Nacho114/harpoon/internal/otel"
	"github.com/Nacho114/harpoon/internal/reconcile"
	"github.com/Nacho114/harpoon/internal/store"
)

// workspace bundles everything a one-shot command needs: the resolved
// multiplexer, the bookmark store, and the favorites list reconciled
// against a fresh registry snapshot.
type workspace struct {
	cfg         *config.Config
	mux         mux.Multiplexer
	store       *store.Store
	tel         *otel.Telemetry
	sessionName string

	list *harpoon.List
	rec  *reconcile.Reconciler
	snap model.Snapshot
}

// openWorkspace sets up logging and telemetry, connects to the multiplexer
// and store, and loads the session's list resolved against live panes.
func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	initLogging(cfg)

	otel.Version = Version
	tel, err := otel.Init(ctx, otel.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	m, err := getMultiplexer(cfg)
	if err != nil {
		return nil, err
	}

	sessionName, err := m.SessionName(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	bookmarks, err := st.Load(sessionName)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("loading bookmarks: %w", err)
	}

	snap, err := m.Snapshot(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	tel.Metrics.RecordSnapshot(ctx)

	rec := reconcile.New()
	rec.SetPending(bookmarks)
	list := harpoon.NewList()
	res := rec.Apply(list, snap)
	tel.Metrics.RecordSync(ctx, res.Pruned, res.Renamed, res.Restored)

	return &workspace{
		cfg:         cfg,
		mux:         m,
		store:       st,
		tel:         tel,
		sessionName: sessionName,
		list:        list,
		rec:         rec,
		snap:        snap,
	}, nil
}

// save writes the current list back to the store. Bookmarks whose pane is
// not live right now stay at the tail instead of being dropped.
func (w *workspace) save() error {
	bookmarks := append(w.list.Bookmarks(), w.rec.PendingBookmarks()...)
	return w.store.Save(w.sessionName, bookmarks)
}

// close flushes telemetry and releases the store.
func (w *workspace) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	w.tel.Shutdown(ctx)
	if err := w.store.Close(); err != nil {
		logging.Warn("closing store failed", "error", err)
	}
	logging.Shutdown()
}
