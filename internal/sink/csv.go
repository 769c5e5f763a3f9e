package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"shotsync/internal/reconcile"
	"shotsync/internal/workorder"
)

// CSVSink writes reconciled records as a slash-delimited CSV worklist: a
// header row with the work order's job metadata, two blank spacer rows,
// then one row per record. Fields containing slashes (every canonical
// path) are quoted by the encoder.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink writes the work-order header and returns a sink ready for
// records. Callers must Flush when the run completes.
func NewCSVSink(w io.Writer, order *workorder.WorkOrder) (*CSVSink, error) {
	writer := csv.NewWriter(w)
	writer.Comma = '/'

	if err := writer.Write([]string{order.Producer, order.Operator, order.Job, order.Notes}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i := 0; i < 2; i++ {
		if err := writer.Write([]string{""}); err != nil {
			return nil, fmt.Errorf("write csv spacer: %w", err)
		}
	}
	return &CSVSink{w: writer}, nil
}

// Emit writes one (canonical path, frame range) row.
func (s *CSVSink) Emit(_ context.Context, record reconcile.Record) error {
	if err := s.w.Write([]string{record.CanonicalPath, record.Range.String()}); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush drains buffered rows to the underlying writer.
func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
