package timecode

import (
	"errors"
	"testing"

	"shotsync/internal/frames"
)

func TestFromFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		fps   int
		want  string
	}{
		{"just over a second", 35, 24, "00:00:01:11"},
		{"over a minute", 1569, 24, "00:01:05:09"},
		{"several minutes", 14000, 24, "00:09:43:08"},
		{"frame zero", 0, 24, "00:00:00:00"},
		{"thirty fps", 90, 30, "00:00:03:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFrame(tt.frame, tt.fps)
			if err != nil {
				t.Fatalf("FromFrame(%d, %d): %v", tt.frame, tt.fps, err)
			}
			if got != tt.want {
				t.Errorf("FromFrame(%d, %d) = %q, want %q", tt.frame, tt.fps, got, tt.want)
			}
		})
	}
}

func TestFromFrameOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		fps   int
	}{
		{"negative frame", -1, 24},
		{"24 hours exactly", 24 * 60 * 60 * 24, 24},
		{"beyond 24 hours", 24*60*60*24 + 500, 24},
		{"zero fps", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFrame(tt.frame, tt.fps); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("FromFrame(%d, %d) error = %v, want ErrOutOfRange", tt.frame, tt.fps, err)
			}
		})
	}
}

func TestFromFrameJustUnderCeiling(t *testing.T) {
	// The last representable frame at 24 fps: 23:59:59:23.
	frame := 24*60*60*24 - 1
	got, err := FromFrame(frame, 24)
	if err != nil {
		t.Fatalf("FromFrame(%d, 24): %v", frame, err)
	}
	if got != "23:59:59:23" {
		t.Errorf("FromFrame(%d, 24) = %q, want %q", frame, got, "23:59:59:23")
	}
}

func TestFromRange(t *testing.T) {
	got, err := FromRange(frames.Range{Start: 35, End: 1569}, 24)
	if err != nil {
		t.Fatalf("FromRange: %v", err)
	}
	want := "00:00:01:11 - 00:01:05:09"
	if got != want {
		t.Errorf("FromRange = %q, want %q", got, want)
	}
}

func TestFromRangeSingleton(t *testing.T) {
	got, err := FromRange(frames.Range{Start: 35, End: 35}, 24)
	if err != nil {
		t.Fatalf("FromRange: %v", err)
	}
	if got != "00:00:01:11" {
		t.Errorf("FromRange singleton = %q, want %q", got, "00:00:01:11")
	}
}

func TestFromRangeEndOutOfRange(t *testing.T) {
	if _, err := FromRange(frames.Range{Start: 0, End: 24 * 60 * 60 * 24}, 24); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FromRange error = %v, want ErrOutOfRange", err)
	}
}
