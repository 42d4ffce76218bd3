package gridwriter

import (
	"github.com/olekukonko/errors"
	"github.com/olekukonko/gridwriter/gwcolor"
	"github.com/olekukonko/gridwriter/gwtext"
)

// ErrInvalidColorSpec is returned by ColorFromExample when s has no ANSI
// escape sequence to anchor a color handle to.
var ErrInvalidColorSpec = errors.New("gridwriter: invalid color spec")

// ColorFromExample builds a Color handle from an already-styled example
// string: its prefix is the first ANSI escape sequence found in s, and its
// suffix is the last one (the sequence that, in a well-formed example,
// restores the prior style). A string with only one escape sequence is
// treated as carrying an implicit full reset suffix.
func ColorFromExample(s string) (gwcolor.Color, error) {
	first, _, firstEnd, ok := gwtext.NextEscape(s, 0)
	if !ok {
		return gwcolor.Color{}, ErrInvalidColorSpec
	}
	last := first
	count := 1
	searchFrom := firstEnd
	for {
		seq, _, end, ok := gwtext.NextEscape(s, searchFrom)
		if !ok {
			break
		}
		last = seq
		count++
		searchFrom = end
	}
	if count == 1 {
		return gwcolor.Color{Prefix: first, Suffix: "\x1b[0m"}, nil
	}
	return gwcolor.Color{Prefix: first, Suffix: last}, nil
}
