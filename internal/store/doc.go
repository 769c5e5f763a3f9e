// Package store persists reconciliation output in SQLite.
//
// Two tables mirror the run lifecycle: runs records one row per processed
// export file (who ran the tool, which review tool produced the file, the
// user and date baked into the file name), and frames records one row per
// reconciled (canonical path, frame range) pair. The canned worklist
// queries used by production coordinators live here too.
//
// The database is guarded by a sibling lock file so concurrent shotsync
// invocations cannot interleave writes. Schema changes bump the version in
// schema.go; users clear the database to adopt the new schema.
package store
