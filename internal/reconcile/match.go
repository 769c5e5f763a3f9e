package reconcile

import "strings"

// minMatchSeparators is the acceptance threshold: the shared trailing
// sub-path must contain more than this many slashes, i.e. at least two
// shared path segments.
const minMatchSeparators = 1

// CommonTrailingPath returns the longest sub-path shared by the tails of a
// and b, in forward orientation with a leading slash. Segments must match
// wholly; partial segment overlap does not count. Paths that share nothing
// yield "". Both inputs must already use forward slashes.
func CommonTrailingPath(a, b string) string {
	segsA := tailSegments(a)
	segsB := tailSegments(b)

	n := 0
	for n < len(segsA) && n < len(segsB) && segsA[n] == segsB[n] {
		n++
	}
	if n == 0 {
		return ""
	}

	common := strings.Join(segsA[:n], "/")
	if endsWithDriveArtifact(common) {
		// The shared tail reaches a drive letter; the forward form is
		// already rooted (C:/...) and takes no extra separator.
		return reverse(common)
	}
	return "/" + reverse(common)
}

// Match returns the first canonical path whose trailing sub-path shared
// with the reviewed path clears the separator threshold. The bool is false
// when nothing matches; that is an expected outcome, not an error.
func Match(reviewed string, canonical []string) (string, bool) {
	if reviewed == "" {
		return "", false
	}
	for _, candidate := range canonical {
		if strings.Count(CommonTrailingPath(candidate, reviewed), "/") > minMatchSeparators {
			return candidate, true
		}
	}
	return "", false
}

// tailSegments reverses the path character-by-character and splits it into
// non-empty segments, so index 0 is the (reversed) final segment of the
// original path.
func tailSegments(path string) []string {
	parts := strings.Split(reverse(path), "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// endsWithDriveArtifact reports whether a reversed common path terminates in
// "/:X", the reversed image of a leading "X:/" drive prefix.
func endsWithDriveArtifact(reversed string) bool {
	if len(reversed) < 3 {
		return false
	}
	tail := reversed[len(reversed)-3:]
	return tail[0] == '/' && tail[1] == ':' && isWordByte(tail[2])
}

func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
