package sink

import (
	"context"

	"shotsync/internal/exportline"
	"shotsync/internal/reconcile"
	"shotsync/internal/store"
)

// DBSink persists reconciled records under one run. The run row itself is
// created by the caller before any line is processed.
type DBSink struct {
	store *store.Store
	runID string
	src   exportline.Source
}

// NewDBSink binds a sink to a run and its export-file identity.
func NewDBSink(st *store.Store, runID string, src exportline.Source) *DBSink {
	return &DBSink{store: st, runID: runID, src: src}
}

// Emit inserts one frame record.
func (s *DBSink) Emit(ctx context.Context, record reconcile.Record) error {
	return s.store.InsertFrame(ctx, s.runID, s.src, record.CanonicalPath, record.Range.String())
}
