package frames

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive run of frame numbers. A singleton has Start == End.
type Range struct {
	Start int
	End   int
}

// String renders the range as "N" for singletons or "N-M" otherwise.
func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Singleton reports whether the range covers exactly one frame.
func (r Range) Singleton() bool {
	return r.Start == r.End
}

// Midpoint returns the middle frame of the range, rounding down.
func (r Range) Midpoint() int {
	return r.Start + (r.End-r.Start)/2
}

// ParseRange parses a rendered range ("N" or "N-M") back into a Range.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("parse range: empty input")
	}
	start, end, dashed := strings.Cut(s, "-")
	first, err := strconv.Atoi(start)
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", s, err)
	}
	if !dashed {
		return Range{Start: first, End: first}, nil
	}
	last, err := strconv.Atoi(end)
	if err != nil {
		return Range{}, fmt.Errorf("parse range %q: %w", s, err)
	}
	if last < first {
		return Range{}, fmt.Errorf("parse range %q: end before start", s)
	}
	return Range{Start: first, End: last}, nil
}

// Normalize keeps only tokens made entirely of decimal digits and parses
// them as frame numbers in their original order. Sentinels, empty strings,
// and signed values are dropped. The input is assumed ascending and
// duplicate-free; Normalize does not reorder it.
func Normalize(tokens []string) []int {
	if len(tokens) == 0 {
		return nil
	}
	numbers := make([]int, 0, len(tokens))
	for _, token := range tokens {
		if !allDigits(token) {
			continue
		}
		value, err := strconv.Atoi(token)
		if err != nil {
			// Out of int range; treat like any other non-frame token.
			continue
		}
		numbers = append(numbers, value)
	}
	if len(numbers) == 0 {
		return nil
	}
	return numbers
}

// Compress folds an ascending list of frame numbers into maximal contiguous
// ranges, in input order. Empty input yields no ranges.
func Compress(numbers []int) []Range {
	if len(numbers) == 0 {
		return nil
	}
	ranges := make([]Range, 0, len(numbers))
	window := Range{Start: numbers[0], End: numbers[0]}
	for _, n := range numbers[1:] {
		if n == window.End+1 {
			window.End = n
			continue
		}
		ranges = append(ranges, window)
		window = Range{Start: n, End: n}
	}
	return append(ranges, window)
}

// Flatten expands ranges back into individual frame numbers. It is the
// inverse of Compress for well-formed input.
func Flatten(ranges []Range) []int {
	var numbers []int
	for _, r := range ranges {
		for n := r.Start; n <= r.End; n++ {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
