package exportline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine marks an export line whose path region does not satisfy
// the selected grammar. Callers choose whether to skip the line or abort.
var ErrMalformedLine = errors.New("malformed export line")

// ParsedLine is one export annotation: the reviewed path and the raw frame
// tokens that trailed it, in scan order. FrameTokens may contain sentinel
// strings; see frames.Normalize.
type ParsedLine struct {
	Path        string
	FrameTokens []string
}

// ParseBaselight splits a Baselight export line into a reviewed path and raw
// frame tokens. The whole path region is the path, spaces included. An empty
// line yields an empty ParsedLine; a line with no frame tokens yields the
// path alone.
func ParseBaselight(line string) ParsedLine {
	path, tokens := splitLine(line)
	return ParsedLine{Path: normalizePath(path), FrameTokens: tokens}
}

// ParseFlame splits a Flame export line into a reviewed path and raw frame
// tokens. The path region must hold exactly two whitespace-free segments, a
// storage segment and a location segment, joined with a slash. Anything else
// is ErrMalformedLine. An empty line yields an empty ParsedLine.
func ParseFlame(line string) (ParsedLine, error) {
	if line == "" {
		return ParsedLine{}, nil
	}
	region, tokens := splitLine(line)
	segments := strings.Split(region, " ")
	if len(segments) != 2 {
		return ParsedLine{}, fmt.Errorf("%w: flame path region %q has %d segments, want 2", ErrMalformedLine, region, len(segments))
	}
	joined := segments[0] + "/" + segments[1]
	return ParsedLine{Path: normalizePath(joined), FrameTokens: tokens}, nil
}

// splitLine separates a line into its path region and frame-like tail.
// Tokens are consumed from the end while they classify as numbers or
// sentinels; the first path-like token stops the scan.
func splitLine(line string) (string, []string) {
	if line == "" {
		return "", nil
	}
	tokens := strings.Split(line, " ")
	boundary := len(tokens)
	for i := len(tokens) - 1; i >= 0; i-- {
		if !frameLike(tokens[i]) {
			break
		}
		boundary = i
	}
	frameTokens := tokens[boundary:]
	if len(frameTokens) == 0 {
		frameTokens = nil
	}
	return strings.Join(tokens[:boundary], " "), frameTokens
}

// normalizePath flips backslashes to forward slashes and trims surrounding
// whitespace. This is the single normalization point for reviewed paths;
// everything downstream compares slash-separated paths.
func normalizePath(path string) string {
	return strings.TrimSpace(strings.ReplaceAll(path, "\\", "/"))
}
