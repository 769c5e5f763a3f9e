// Package exportline parses review-tool export lines and export file names.
//
// Two export grammars share one tokenization rule: a line is split on single
// spaces, then scanned from the end past frame-like tokens (decimal numbers
// and the sentinels <err>, <null>, and the empty string). Everything before
// the frame-like tail is the path region. The backward scan is load-bearing:
// paths may contain spaces, so the boundary cannot be found with a fixed
// delimiter.
//
// Baselight exports put a single path in the path region. Flame exports put
// a storage segment and a location segment there, joined with a slash to
// form the reviewed path. Grammar selection is made by the caller from the
// export file's name, never inferred from line content.
package exportline
