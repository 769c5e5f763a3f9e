// Package frames normalizes raw frame tokens and compresses frame numbers
// into contiguous ranges.
//
// Review tools export marked frames as space-separated decimal tokens with
// occasional sentinel noise (<err>, <null>, empty strings) mixed in.
// Normalize filters the noise; Compress folds the surviving numbers into
// maximal contiguous runs rendered as "N" or "N-M".
//
// Producers emit frames in ascending order without duplicates, and this
// package relies on that: Normalize preserves input order and performs no
// sorting or deduplication. Callers that cannot guarantee ordered distinct
// input must sort and dedupe before compressing.
package frames
