package store

import "time"

// dateLayout is how file dates are stored; date-only so equality and
// lexical range comparisons behave.
const dateLayout = "2006-01-02"

// Run records one processed export file.
type Run struct {
	ID          int64
	RunID       string
	ScriptUser  string
	Tool        string
	UserOnFile  string
	FileName    string
	FileDate    time.Time
	SubmittedAt time.Time
}

// FrameRecord is one reconciled (canonical path, frame range) pair along
// with the identity of the export file it came from.
type FrameRecord struct {
	ID         int64
	RunID      string
	Tool       string
	UserOnFile string
	FileName   string
	FileDate   time.Time
	Location   string
	FrameRange string
}
