package gwtext

import "strings"

// ReplacementChar pads a cut that lands inside a wide character, mirroring
// papergrid's cut_str.
const ReplacementChar = '�'

// SplitAtVisual walks s rune by rune accumulating visual width and reports,
// mirroring papergrid's string_split_at_length:
//
//   - bytePrefixLen: the byte length of the longest prefix of s whose visual
//     width fits within w without splitting a rune;
//   - countPad: 0 if the prefix lands exactly on a rune boundary at width w
//     (or s is shorter than w); otherwise the number of replacement
//     characters needed to pad the cut out to width w (always 1, since a
//     single rune can be at most double-width);
//   - splitCharLen: the UTF-8 byte length of the rune that didn't fit, or 0
//     if no rune was split.
func SplitAtVisual(s string, w int) (bytePrefixLen, countPad, splitCharLen int) {
	width := 0
	length := 0
	for _, r := range s {
		if width == w {
			break
		}
		cw := runeWidth(r)
		if width+cw > w {
			return length, w - width, runeLen(r)
		}
		width += cw
		length += runeLen(r)
	}
	return length, 0, 0
}

// CutString returns the prefix of s whose visual width is <= w. If w falls
// inside a wide character it pads with the replacement character to reach
// exactly w. ANSI style sequences that were opened and not yet closed by the
// cut point are closed with their proper reset codes.
func CutString(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if !hasEscape(s) {
		prefixLen, pad, _ := SplitAtVisual(s, w)
		if pad == 0 {
			return s[:prefixLen]
		}
		var b strings.Builder
		b.WriteString(s[:prefixLen])
		for i := 0; i < pad; i++ {
			b.WriteRune(ReplacementChar)
		}
		return b.String()
	}
	return cutStyled(s, w)
}

// cutStyled cuts s while tracking ANSI SGR state so it can both skip escape
// sequences (they cost no width) and close any style left open by the cut.
func cutStyled(s string, w int) string {
	tracker := &ansiTracker{}
	var b strings.Builder
	width := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			if loc := ansiPattern.FindStringIndex(s[i:]); loc != nil && loc[0] == 0 {
				seq := s[i : i+loc[1]]
				tracker.Feed(seq)
				b.WriteString(seq)
				i += loc[1]
				continue
			}
		}
		if width == w {
			break
		}
		r, size := decodeRune(s[i:])
		cw := runeWidth(r)
		if width+cw > w {
			pad := w - width
			for p := 0; p < pad; p++ {
				b.WriteRune(ReplacementChar)
			}
			i += size
			width = w
			break
		}
		b.WriteString(s[i : i+size])
		width += cw
		i += size
	}
	b.WriteString(tracker.ClosingSuffix())
	return b.String()
}
