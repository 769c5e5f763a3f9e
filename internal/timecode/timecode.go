// Package timecode converts frame numbers into SMPTE-style hh:mm:ss:ff
// strings at an integer frame rate. The format has no day field, so any
// conversion landing at or past hour 24 is out of range.
package timecode

import (
	"errors"
	"fmt"

	"shotsync/internal/frames"
)

// ErrOutOfRange marks conversions the hh:mm:ss:ff format cannot express:
// negative frames or results at hour 24 and beyond.
var ErrOutOfRange = errors.New("timecode out of range")

// FromFrame converts a frame number to an hh:mm:ss:ff string at the given
// frame rate. Each field is zero-padded to width two.
func FromFrame(frame, fps int) (string, error) {
	if fps <= 0 {
		return "", fmt.Errorf("%w: fps %d must be positive", ErrOutOfRange, fps)
	}
	if frame < 0 {
		return "", fmt.Errorf("%w: negative frame %d", ErrOutOfRange, frame)
	}
	second := frame / fps
	frame %= fps
	minute := second / 60
	second %= 60
	hour := minute / 60
	minute %= 60
	if hour >= 24 {
		return "", fmt.Errorf("%w: frame exceeds 24 hours", ErrOutOfRange)
	}
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hour, minute, second, frame), nil
}

// FromRange converts a frame range into a time range string
// "<start> - <end>", or a single timecode for a singleton range.
func FromRange(r frames.Range, fps int) (string, error) {
	start, err := FromFrame(r.Start, fps)
	if err != nil {
		return "", err
	}
	if r.Singleton() {
		return start, nil
	}
	end, err := FromFrame(r.End, fps)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s - %s", start, end), nil
}
