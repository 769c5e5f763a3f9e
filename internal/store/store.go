package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"shotsync/internal/config"
	"shotsync/internal/exportline"
)

// Store manages worklist persistence backed by SQLite. Opening a store
// acquires an exclusive lock file beside the database; a second writer
// fails fast instead of interleaving runs.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the worklist database and applies the
// schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.Paths.DatabasePath
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire database lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("database %s is in use by another shotsync run", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the lock file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
		s.lock = nil
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// BeginRun inserts a run row for one export file and returns its run ID.
func (s *Store) BeginRun(ctx context.Context, scriptUser string, src exportline.Source) (string, error) {
	runID := uuid.New().String()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, script_user, tool, user_on_file, file_name, file_date, submitted_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		scriptUser,
		string(src.Tool),
		src.User,
		src.FileName,
		src.FileDate.Format(dateLayout),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return runID, nil
}

// InsertFrame persists one reconciled frame range under a run.
func (s *Store) InsertFrame(ctx context.Context, runID string, src exportline.Source, location, frameRange string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO frames (run_id, tool, user_on_file, file_name, file_date, location, frame_range)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID,
		string(src.Tool),
		src.User,
		src.FileName,
		src.FileDate.Format(dateLayout),
		location,
		frameRange,
	)
	if err != nil {
		return fmt.Errorf("insert frame: %w", err)
	}
	return nil
}

// ListRuns returns every run row, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, script_user, tool, user_on_file, file_name, file_date, submitted_at
         FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var fileDate, submitted string
		if err := rows.Scan(&r.ID, &r.RunID, &r.ScriptUser, &r.Tool, &r.UserOnFile, &r.FileName, &fileDate, &submitted); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.FileDate, err = time.Parse(dateLayout, fileDate); err != nil {
			return nil, fmt.Errorf("parse run file date %q: %w", fileDate, err)
		}
		if r.SubmittedAt, err = time.Parse(time.RFC3339Nano, submitted); err != nil {
			return nil, fmt.Errorf("parse run submitted time %q: %w", submitted, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// ListFrames returns every reconciled frame record, oldest first.
func (s *Store) ListFrames(ctx context.Context) ([]FrameRecord, error) {
	return s.queryFrames(ctx,
		`SELECT id, run_id, tool, user_on_file, file_name, file_date, location, frame_range
         FROM frames ORDER BY id`)
}

// Clear removes all runs and frame records but keeps the schema.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM frames"); err != nil {
		return fmt.Errorf("clear frames: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit clear: %w", err)
	}
	return nil
}

func (s *Store) queryFrames(ctx context.Context, query string, args ...any) ([]FrameRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query frames: %w", err)
	}
	defer rows.Close()

	var records []FrameRecord
	for rows.Next() {
		var rec FrameRecord
		var fileDate string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Tool, &rec.UserOnFile, &rec.FileName, &fileDate, &rec.Location, &rec.FrameRange); err != nil {
			return nil, fmt.Errorf("scan frame: %w", err)
		}
		if rec.FileDate, err = time.Parse(dateLayout, fileDate); err != nil {
			return nil, fmt.Errorf("parse frame file date %q: %w", fileDate, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
