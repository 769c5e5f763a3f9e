// Package reconcile matches reviewed paths against canonical work-order
// paths and drives the per-line reconciliation pipeline.
//
// A reviewed path and a canonical path name the same file under different
// storage-root mounts, so they are compared from the tail: both paths are
// reversed, the segment-aware common prefix of the reversals is taken, and
// the result is flipped back. A match needs more than one separator in the
// shared sub-path — a lone shared filename or resolution token is treated
// as coincidence.
//
// Candidates are tried in work-order document order and the first one past
// the threshold wins. This is a deliberate early-exit policy, not a
// best-match search; changing it changes output.
package reconcile
