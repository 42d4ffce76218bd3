package gwwrap

import (
	"strings"

	"github.com/olekukonko/gridwriter/gwtext"
)

// SuffixMode selects what happens when a truncation suffix does not fit in
// the available width.
type SuffixMode int

const (
	SuffixReplace SuffixMode = iota // fill the whole field with a repeated char
	SuffixCut                       // truncate the suffix itself
	SuffixIgnore                    // drop the suffix, cut content only
)

// TrimStrategy selects which empty affixes are discarded before measurement
// and alignment.
type TrimStrategy int

const (
	TrimNone TrimStrategy = iota
	TrimHorizontal
	TrimVertical
	TrimBoth
)

// TruncateText rewrites lines to fit width, reserving room for suffix and
// appending it to the (first, or every, when multiline) line that needed
// cutting. If suffix does not fit even alone, limitMode decides the
// fallback: SuffixReplace fills the field with limitChar, SuffixCut shows
// as much of the suffix as fits, SuffixIgnore cuts content with no suffix.
func TruncateText(lines []string, width int, suffix string, limitMode SuffixMode, limitChar rune, multiline bool) []string {
	if width <= 0 {
		return []string{""}
	}
	process := func(line string) string {
		if gwtext.Width(line) <= width {
			return line
		}
		suffixW := gwtext.Width(suffix)
		if suffixW > width {
			switch limitMode {
			case SuffixReplace:
				return strings.Repeat(string(limitChar), width)
			case SuffixCut:
				return gwtext.CutString(suffix, width)
			default:
				return gwtext.CutString(line, width)
			}
		}
		return gwtext.CutString(line, width-suffixW) + suffix
	}
	if len(lines) == 0 {
		return []string{process("")}
	}
	if !multiline {
		return []string{process(lines[0])}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = process(l)
	}
	return out
}

// PadRight pads s with spaces on the right until its visual width reaches
// width (a no-op if s is already at or beyond width).
func PadRight(s string, width int) string {
	w := gwtext.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TrimLines applies TrimStrategy to a cell's lines: Vertical (and Both)
// drop leading/trailing empty lines; Horizontal (and Both) ANSI-aware trim
// leading/trailing whitespace from every remaining line.
func TrimLines(lines []string, strategy TrimStrategy) []string {
	if strategy == TrimVertical || strategy == TrimBoth {
		lines = trimEmptyEdges(lines)
	}
	if strategy == TrimHorizontal || strategy == TrimBoth {
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = strings.TrimSpace(gwtext.StripANSI(l))
		}
		return out
	}
	return lines
}

func trimEmptyEdges(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
