package store

import (
	"context"
	"fmt"
	"time"
)

// WorkByUser returns every reconciled range submitted by the given user.
func (s *Store) WorkByUser(ctx context.Context, user string) ([]FrameRecord, error) {
	return s.queryFrames(ctx,
		`SELECT id, run_id, tool, user_on_file, file_name, file_date, location, frame_range
         FROM frames WHERE user_on_file = ? ORDER BY id`, user)
}

// WorkBeforeDate returns work recorded from the given tool's exports whose
// file date falls strictly before the cutoff.
func (s *Store) WorkBeforeDate(ctx context.Context, tool string, before time.Time) ([]FrameRecord, error) {
	return s.queryFrames(ctx,
		`SELECT id, run_id, tool, user_on_file, file_name, file_date, location, frame_range
         FROM frames WHERE tool = ? AND file_date < ? ORDER BY id`,
		tool, before.Format(dateLayout))
}

// WorkOnStorageByDate returns work recorded on the given date whose
// canonical path lives under the named storage root (the first path
// segment, e.g. "hpsans13").
func (s *Store) WorkOnStorageByDate(ctx context.Context, storage string, date time.Time) ([]FrameRecord, error) {
	return s.queryFrames(ctx,
		`SELECT id, run_id, tool, user_on_file, file_name, file_date, location, frame_range
         FROM frames WHERE file_date = ? AND location LIKE ? ORDER BY id`,
		date.Format(dateLayout), "/"+storage+"/%")
}

// UsersByTool returns the distinct submitting users of the given review
// tool, in first-seen order.
func (s *Store) UsersByTool(ctx context.Context, tool string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_on_file FROM runs WHERE tool = ? GROUP BY user_on_file ORDER BY MIN(id)`, tool)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var user string
		if err := rows.Scan(&user); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// MultiFrameRanges returns records whose range spans more than one frame
// and ends at or before maxFrame. The report uses this to drop singleton
// touches and ranges beyond the probed video.
func (s *Store) MultiFrameRanges(ctx context.Context, maxFrame int) ([]FrameRecord, error) {
	return s.queryFrames(ctx,
		`SELECT id, run_id, tool, user_on_file, file_name, file_date, location, frame_range
         FROM frames WHERE frame_range LIKE '%-%'
           AND CAST(substr(frame_range, instr(frame_range, '-') + 1) AS INTEGER) <= ?
         ORDER BY id`, maxFrame)
}
