// Package workorder parses Xytech work-order documents into an immutable
// WorkOrder: job metadata plus the ordered list of canonical storage paths
// that reconciliation targets. Path order is preserved because the first
// canonical path to clear the match threshold wins.
package workorder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField marks a work order lacking a required field or section
// marker. No partial work order is usable, so callers abort the run.
var ErrMissingField = errors.New("work order missing field")

// WorkOrder is the parsed work-order document. It is built once per run and
// read-only afterwards; CanonicalPaths keeps document order.
type WorkOrder struct {
	Producer       string
	Operator       string
	Job            string
	Notes          string
	CanonicalPaths []string
}

// Parse reads a work-order document. It requires Producer:, Operator:, and
// Job: field lines plus a path block delimited by the literal marker lines
// Location: and Notes:; the text after Notes: becomes the notes field.
func Parse(content string) (*WorkOrder, error) {
	producer, err := field(content, "Producer")
	if err != nil {
		return nil, err
	}
	operator, err := field(content, "Operator")
	if err != nil {
		return nil, err
	}
	job, err := field(content, "Job")
	if err != nil {
		return nil, err
	}

	_, afterLocation, found := strings.Cut(content, "\nLocation:\n")
	if !found {
		return nil, fmt.Errorf("%w: no Location: section", ErrMissingField)
	}
	pathBlock, notes, found := strings.Cut(afterLocation, "\nNotes:\n")
	if !found {
		return nil, fmt.Errorf("%w: no Notes: section", ErrMissingField)
	}

	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(pathBlock), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Separators are normalized here, once, so the reconciler only
		// ever compares slash-separated paths.
		paths = append(paths, strings.ReplaceAll(line, "\\", "/"))
	}

	return &WorkOrder{
		Producer:       producer,
		Operator:       operator,
		Job:            job,
		Notes:          strings.TrimSpace(notes),
		CanonicalPaths: paths,
	}, nil
}

// field extracts the value of a "Label: value" line anywhere in the
// document.
func field(content, label string) (string, error) {
	prefix := label + ": "
	for _, line := range strings.Split(content, "\n") {
		if value, ok := strings.CutPrefix(line, prefix); ok {
			return strings.TrimSpace(value), nil
		}
	}
	return "", fmt.Errorf("%w: no %s found", ErrMissingField, label)
}
