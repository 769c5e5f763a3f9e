package exportline

// tokenKind classifies a single space-separated token from an export line.
type tokenKind int

const (
	// tokenNumber is a run of decimal digits: a frame number.
	tokenNumber tokenKind = iota
	// tokenSentinel is review-tool noise emitted in place of a frame
	// number: <err>, <null>, or an empty token from a trailing space.
	tokenSentinel
	// tokenPath is anything else and terminates the backward scan.
	tokenPath
)

func classify(token string) tokenKind {
	switch token {
	case "", "<err>", "<null>":
		return tokenSentinel
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return tokenPath
		}
	}
	return tokenNumber
}

// frameLike reports whether a token belongs to the frame-token tail.
func frameLike(token string) bool {
	return classify(token) != tokenPath
}
