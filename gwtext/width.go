package gwtext

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/olekukonko/gridwriter/internal/twcache"
)

// widthCache memoizes visual-width measurements; a capacity of 0 disables
// memoization entirely.
var widthCache = twcache.NewLRU[string, int](4096)

// SetCacheCapacity resizes (or disables, with capacity<=0) the package-level
// visual-width memoization cache.
func SetCacheCapacity(capacity int) {
	widthCache = twcache.NewLRU[string, int](capacity)
}

// Width returns the Unicode East-Asian-Width visual width of s after
// stripping ANSI escape sequences. Undefined-width runes contribute 0.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if !hasEscape(s) {
		return widthCache.GetOrCompute(s, func() int { return measure(s) })
	}
	return measure(StripANSI(s))
}

func measure(s string) int {
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw < 0 {
			rw = 0
		}
		w += rw
	}
	return w
}

// WidthMultiline returns the maximum Width over the lines of s split at '\n'.
func WidthMultiline(s string) int {
	if !strings.Contains(s, "\n") {
		return Width(s)
	}
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if w := Width(line); w > max {
			max = w
		}
	}
	return max
}

// TabExpand replaces each unescaped '\t' with n spaces. A literal tab can be
// preserved by escaping it as "\\\t" in the source text; n=0 deletes tabs.
func TabExpand(s string, n int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + n)
	pad := strings.Repeat(" ", n)
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\t' {
			if i > 0 && runes[i-1] == '\\' {
				// drop the escaping backslash, keep the literal tab
				tail := b.String()
				b.Reset()
				b.WriteString(strings.TrimSuffix(tail, "\\"))
				b.WriteRune('\t')
				continue
			}
			b.WriteString(pad)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// WidthWithTabs returns Width(s) plus n for every literal tab character.
func WidthWithTabs(s string, n int) int {
	return Width(s) + strings.Count(s, "\t")*n
}

// LineIter splits s at '\n' the way strings.Split does (an empty trailing
// element when s ends with a newline), re-opening any ANSI style spans that
// were active at the start of each produced line so every line is
// self-contained when rendered on its own.
func LineIter(s string) []string {
	if !hasEscape(s) {
		return strings.Split(s, "\n")
	}
	lines := strings.Split(s, "\n")
	tracker := &ansiTracker{}
	out := make([]string, len(lines))
	for i, line := range lines {
		prefix := openingPrefix(tracker)
		feedLine(tracker, line)
		out[i] = prefix + line
	}
	return out
}

// openingPrefix returns the escape sequences needed to re-establish every
// style category currently open in tracker.
func openingPrefix(t *ansiTracker) string {
	var codes []string
	for cat := sgrCategory(0); cat < numCategories; cat++ {
		if t.open[cat] {
			codes = append(codes, t.openCode[cat])
		}
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func feedLine(t *ansiTracker, line string) {
	for _, m := range ansiPattern.FindAllString(line, -1) {
		t.Feed(m)
	}
}
