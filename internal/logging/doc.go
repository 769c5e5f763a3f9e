// Package logging wraps log/slog with the attribute helpers and handlers
// shared by every shotsync component.
//
// Two output formats are supported: a human-oriented console handler whose
// color output is gated on the destination being a terminal, and a JSON
// handler for machine consumption. Components obtain scoped loggers through
// NewComponentLogger so every event carries a component attribute.
package logging
