package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "harpoon"

// Metrics holds all OTEL metric instruments for harpoon.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// List mutation counters
	Adds     metric.Int64Counter
	Removes  metric.Int64Counter
	Prunes   metric.Int64Counter
	Renames  metric.Int64Counter
	Restores metric.Int64Counter

	// Usage counters
	Jumps     metric.Int64Counter
	Snapshots metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.Adds, err = meter.Int64Counter("list.adds",
		metric.WithDescription("Panes added to the favorites list"))
	if err != nil {
		return nil, err
	}

	m.Removes, err = meter.Int64Counter("list.removes",
		metric.WithDescription("Panes removed from the favorites list by the user"))
	if err != nil {
		return nil, err
	}

	m.Prunes, err = meter.Int64Counter("list.prunes",
		metric.WithDescription("Entries dropped because their pane closed"))
	if err != nil {
		return nil, err
	}

	m.Renames, err = meter.Int64Counter("list.renames",
		metric.WithDescription("Entries whose display name was refreshed from the registry"))
	if err != nil {
		return nil, err
	}

	m.Restores, err = meter.Int64Counter("list.restores",
		metric.WithDescription("Saved bookmarks re-attached to live panes"))
	if err != nil {
		return nil, err
	}

	m.Jumps, err = meter.Int64Counter("jumps.total",
		metric.WithDescription("Pane focus jumps partitioned by source (overlay, cli)"))
	if err != nil {
		return nil, err
	}

	m.Snapshots, err = meter.Int64Counter("snapshots.total",
		metric.WithDescription("Registry snapshots taken"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSync records the outcome of one reconciliation pass.
func (m *Metrics) RecordSync(ctx context.Context, pruned, renamed, restored int) {
	if m == nil {
		return
	}
	if pruned > 0 {
		m.Prunes.Add(ctx, int64(pruned))
	}
	if renamed > 0 {
		m.Renames.Add(ctx, int64(renamed))
	}
	if restored > 0 {
		m.Restores.Add(ctx, int64(restored))
	}
}

// RecordAdd records panes added to the list.
func (m *Metrics) RecordAdd(ctx context.Context, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.Adds.Add(ctx, int64(n))
}

// RecordRemove records a user-initiated removal.
func (m *Metrics) RecordRemove(ctx context.Context) {
	if m == nil {
		return
	}
	m.Removes.Add(ctx, 1)
}

// RecordJump records a focus jump with the given source.
func (m *Metrics) RecordJump(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.Jumps.Add(ctx, 1, metric.WithAttributes(
		attribute.String("jump.source", source),
	))
}

// RecordSnapshot records one registry snapshot.
func (m *Metrics) RecordSnapshot(ctx context.Context) {
	if m == nil {
		return
	}
	m.Snapshots.Add(ctx, 1)
}
