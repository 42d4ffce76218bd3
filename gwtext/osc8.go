package gwtext

import "regexp"

// osc8Pattern matches an OSC-8 hyperlink open sequence: ESC ] 8 ; params ; URI (BEL|ST).
var osc8Pattern = regexp.MustCompile("\x1b\\]8;[^;]*;[^\x1b\x07]*(\x1b\\\\|\x07)")

// SplitHyperlink reports whether s is entirely wrapped by a single OSC-8
// hyperlink (open ... text ... close) and, if so, returns the opening
// sequence, the wrapped text, and the closing sequence separately.
func SplitHyperlink(s string) (open, inner, closeSeq string, ok bool) {
	loc := osc8Pattern.FindStringIndex(s)
	if loc == nil || loc[0] != 0 {
		return "", s, "", false
	}
	open = s[:loc[1]]
	rest := s[loc[1]:]
	closeLoc := osc8Pattern.FindStringIndex(rest)
	if closeLoc == nil || closeLoc[1] != len(rest) {
		return "", s, "", false
	}
	return open, rest[:closeLoc[0]], rest[closeLoc[0]:], true
}

// WrapHyperlink re-wraps a line produced by wrapping the inner text of a
// hyperlink so the link target still covers the visible substring.
func WrapHyperlink(open, line, closeSeq string) string {
	if open == "" && closeSeq == "" {
		return line
	}
	return open + line + closeSeq
}
