package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"shotsync/internal/exportline"
	"shotsync/internal/frames"
	"shotsync/internal/logging"
	"shotsync/internal/workorder"
)

// Record is the unit the pipeline emits: one compressed frame range keyed by
// the canonical path its export line reconciled to.
type Record struct {
	CanonicalPath string
	Range         frames.Range
}

// Sink receives reconciled records. Implementations write CSV rows, database
// rows, or anything else; the pipeline does not care.
type Sink interface {
	Emit(ctx context.Context, record Record) error
}

// Stats summarizes one pipeline run over a single export file.
type Stats struct {
	Lines     int
	Malformed int
	Unmatched int
	Records   int
}

// Pipeline reconciles export lines against one work order. It holds no
// per-line state; the work order is read-only, so a Pipeline is safe to
// share across files processed sequentially or concurrently.
type Pipeline struct {
	order  *workorder.WorkOrder
	logger *slog.Logger
}

// New builds a pipeline over the given work order.
func New(order *workorder.WorkOrder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		order:  order,
		logger: logging.NewComponentLogger(logger, "reconcile"),
	}
}

// Run processes every line of an export file's content under the given
// tool's grammar, emitting one Record per (canonical path, frame range)
// pair into the sink.
//
// Per-line failures never abort the run: malformed lines are counted and
// logged, and lines whose path reconciles to no canonical path are silently
// dropped along with their frames. Sink errors are I/O failures and do
// abort.
func (p *Pipeline) Run(ctx context.Context, tool exportline.Tool, content string, sink Sink) (Stats, error) {
	var stats Stats
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		stats.Lines++

		parsed, err := tool.Parse(line)
		if err != nil {
			if errors.Is(err, exportline.ErrMalformedLine) {
				stats.Malformed++
				p.logger.Warn("skipping malformed export line",
					logging.String("tool", string(tool)),
					logging.Error(err))
				continue
			}
			return stats, fmt.Errorf("parse export line: %w", err)
		}

		ranges := frames.Compress(frames.Normalize(parsed.FrameTokens))

		canonical, ok := Match(parsed.Path, p.order.CanonicalPaths)
		if !ok {
			stats.Unmatched++
			p.logger.Debug("no canonical path for reviewed path",
				logging.String("reviewed_path", parsed.Path))
			continue
		}

		for _, r := range ranges {
			if err := sink.Emit(ctx, Record{CanonicalPath: canonical, Range: r}); err != nil {
				return stats, fmt.Errorf("emit record: %w", err)
			}
			stats.Records++
		}
	}
	return stats, nil
}
