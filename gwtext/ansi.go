// Package gwtext implements the text-measurement primitives the rest of the
// engine builds on: Unicode visual width, ANSI stripping, tab expansion and
// ANSI/width-aware slicing. Every function here is pure.
package gwtext

import "regexp"

// ansiPattern matches both CSI control sequences (colors, cursor moves) and
// OSC sequences (hyperlinks) terminated by ST or BEL.
var ansiPattern = compileANSIFilter()

func compileANSIFilter() *regexp.Regexp {
	const esc = "\x1b"
	const bel = "\x07"
	st := "(" + esc + `\\` + "|" + bel + ")"
	csi := esc + `\[` + "[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]"
	osc := esc + `\]` + `.*?` + st
	return regexp.MustCompile("(" + csi + "|" + osc + ")")
}

// StripANSI removes every ANSI CSI/OSC escape sequence from s.
func StripANSI(s string) string {
	if !hasEscape(s) {
		return s
	}
	return ansiPattern.ReplaceAllLiteralString(s, "")
}

func hasEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			return true
		}
	}
	return false
}

// sgrCategory groups SGR codes that share a single "reset" code, so a cut
// mid-style can close exactly the styles it opened instead of emitting a
// blanket reset.
type sgrCategory int

const (
	catBold sgrCategory = iota
	catItalic
	catUnderline
	catBlinkReverse
	catConceal
	catStrike
	catForeground
	catBackground
	numCategories
)

var categoryReset = [numCategories]string{
	catBold:         "22",
	catItalic:       "23",
	catUnderline:    "24",
	catBlinkReverse: "27",
	catConceal:      "28",
	catStrike:       "29",
	catForeground:   "39",
	catBackground:   "49",
}

// classifySGR returns the category a single numeric SGR code belongs to,
// and whether it is itself a "reset" for that category.
func classifySGR(code int) (cat sgrCategory, isReset bool, ok bool) {
	switch {
	case code == 0:
		return 0, false, false // full reset handled by caller
	case code == 1 || code == 2:
		return catBold, false, true
	case code == 22:
		return catBold, true, true
	case code == 3:
		return catItalic, false, true
	case code == 23:
		return catItalic, true, true
	case code == 4:
		return catUnderline, false, true
	case code == 24:
		return catUnderline, true, true
	case code == 5 || code == 6 || code == 7:
		return catBlinkReverse, false, true
	case code == 25 || code == 27:
		return catBlinkReverse, true, true
	case code == 8:
		return catConceal, false, true
	case code == 28:
		return catConceal, true, true
	case code == 9:
		return catStrike, false, true
	case code == 29:
		return catStrike, true, true
	case (code >= 30 && code <= 38) || (code >= 90 && code <= 97):
		return catForeground, false, true
	case code == 39:
		return catForeground, true, true
	case (code >= 40 && code <= 48) || (code >= 100 && code <= 107):
		return catBackground, false, true
	case code == 49:
		return catBackground, true, true
	}
	return 0, false, false
}

// ansiTracker replays SGR sequences to know which style categories are open
// at any byte offset, so a mid-style cut can close exactly those, and can
// re-open them verbatim (the original opening code, not just its category).
type ansiTracker struct {
	open     [numCategories]bool
	openCode [numCategories]string
}

// Feed applies one escape sequence (as matched by ansiPattern) to the
// tracker's state.
func (t *ansiTracker) Feed(seq string) {
	if len(seq) < 2 || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return // not an SGR sequence (cursor move, OSC, etc.) - no style effect
	}
	body := seq[2 : len(seq)-1]
	if body == "" {
		t.reset()
		return
	}
	for _, part := range splitParams(body) {
		code := parseIntOr(part, 0)
		if code == 0 {
			t.reset()
			continue
		}
		if cat, isReset, ok := classifySGR(code); ok {
			t.open[cat] = !isReset
			if !isReset {
				t.openCode[cat] = part
			} else {
				t.openCode[cat] = ""
			}
		}
	}
}

func (t *ansiTracker) reset() {
	for i := range t.open {
		t.open[i] = false
		t.openCode[i] = ""
	}
}

// ClosingSuffix returns the escape sequence(s) that close every style
// category currently open, in stable category order.
func (t *ansiTracker) ClosingSuffix() string {
	var codes []string
	for cat := sgrCategory(0); cat < numCategories; cat++ {
		if t.open[cat] {
			codes = append(codes, categoryReset[cat])
		}
	}
	if len(codes) == 0 {
		return ""
	}
	out := "\x1b["
	for i, c := range codes {
		if i > 0 {
			out += ";"
		}
		out += c
	}
	return out + "m"
}

func splitParams(body string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(body); i++ {
		if i == len(body) || body[i] == ';' {
			out = append(out, body[start:i])
			start = i + 1
		}
	}
	return out
}

func parseIntOr(s string, def int) int {
	if s == "" {
		return def
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}
