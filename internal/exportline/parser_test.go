package exportline

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseBaselight(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPath   string
		wantTokens []string
	}{
		{
			name:       "sentinel and trailing space",
			line:       "/images1/starwars/reel1/VFX/Hydraulx 1251 1252 1253 1260 <err> 1270 1271 1272 ",
			wantPath:   "/images1/starwars/reel1/VFX/Hydraulx",
			wantTokens: []string{"1251", "1252", "1253", "1260", "<err>", "1270", "1271", "1272", ""},
		},
		{
			name:       "path only",
			line:       "/images1/starwars/reel1/VFX/Hydraulx",
			wantPath:   "/images1/starwars/reel1/VFX/Hydraulx",
			wantTokens: nil,
		},
		{
			name:       "path with spaces and embedded numbers",
			line:       "/images1/starwars/reel1/VFX/spaces and 3874 numbers 6188 6189 6190 6191",
			wantPath:   "/images1/starwars/reel1/VFX/spaces and 3874 numbers",
			wantTokens: []string{"6188", "6189", "6190", "6191"},
		},
		{
			name:       "windows path",
			line:       "C:\\images1\\starwars\\reel1\\VFX\\Hydraulx 1251 1252 1253 1260 <err> 1270 ",
			wantPath:   "C:/images1/starwars/reel1/VFX/Hydraulx",
			wantTokens: []string{"1251", "1252", "1253", "1260", "<err>", "1270", ""},
		},
		{
			name:       "empty line",
			line:       "",
			wantPath:   "",
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBaselight(tt.line)
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
			if !reflect.DeepEqual(got.FrameTokens, tt.wantTokens) {
				t.Errorf("FrameTokens = %#v, want %#v", got.FrameTokens, tt.wantTokens)
			}
		})
	}
}

func TestParseFlame(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantPath   string
		wantTokens []string
	}{
		{
			name:       "several frames",
			line:       "/net/flame-archive Avatar/reel1/VFX/Hydraulx 1260 1261 1262 1267",
			wantPath:   "/net/flame-archive/Avatar/reel1/VFX/Hydraulx",
			wantTokens: []string{"1260", "1261", "1262", "1267"},
		},
		{
			name:       "two frames",
			line:       "/net/flame-archive Avatar/pickups/shot_5ab/1920x1080 9090 9091",
			wantPath:   "/net/flame-archive/Avatar/pickups/shot_5ab/1920x1080",
			wantTokens: []string{"9090", "9091"},
		},
		{
			name:       "one frame",
			line:       "/net/flame-archive Avatar/reel1/VFX/Framestore 6195",
			wantPath:   "/net/flame-archive/Avatar/reel1/VFX/Framestore",
			wantTokens: []string{"6195"},
		},
		{
			name:       "empty line",
			line:       "",
			wantPath:   "",
			wantTokens: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlame(tt.line)
			if err != nil {
				t.Fatalf("ParseFlame(%q): %v", tt.line, err)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
			if !reflect.DeepEqual(got.FrameTokens, tt.wantTokens) {
				t.Errorf("FrameTokens = %#v, want %#v", got.FrameTokens, tt.wantTokens)
			}
		})
	}
}

func TestParseFlameMalformed(t *testing.T) {
	lines := []string{
		"/net/flame-archive 1260 1261",                       // one path segment
		"/net/flame-archive Avatar/reel1 extra/segment 1260", // three path segments
	}
	for _, line := range lines {
		if _, err := ParseFlame(line); !errors.Is(err, ErrMalformedLine) {
			t.Errorf("ParseFlame(%q) error = %v, want ErrMalformedLine", line, err)
		}
	}
}

func TestToolParse(t *testing.T) {
	parsed, err := ToolBaselight.Parse("/images1/starwars/reel1/partA/1920x1080 32 33 34")
	if err != nil {
		t.Fatalf("ToolBaselight.Parse: %v", err)
	}
	if parsed.Path != "/images1/starwars/reel1/partA/1920x1080" {
		t.Errorf("Path = %q", parsed.Path)
	}

	if _, err := Tool("Resolve").Parse("whatever 1 2 3"); !errors.Is(err, ErrMalformedLine) {
		t.Errorf("unknown tool error = %v, want ErrMalformedLine", err)
	}
}
