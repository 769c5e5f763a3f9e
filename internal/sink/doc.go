// Package sink provides the destinations reconciled records flow into: a
// slash-delimited CSV worklist and the SQLite store. The pipeline is
// agnostic to which one it feeds; both satisfy reconcile.Sink.
package sink
