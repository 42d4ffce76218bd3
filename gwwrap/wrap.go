package gwwrap

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/olekukonko/gridwriter/gwtext"
)

// wordTokens segments s at Unicode word boundaries and returns only the
// non-whitespace tokens, in order, matching the "words" keep_words packs.
func wordTokens(s string) []string {
	var tokens []string
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		tok := string(seg.Value())
		if strings.TrimSpace(tok) == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// WrapLines wraps each of lines independently to width, concatenating the
// results. Hard mode cuts at visual-width boundaries; keep-words mode
// breaks at the last space that fits (a single word longer than width is
// still hard-split). Every produced line is right-padded with spaces to
// width, re-opens any ANSI style left open at its start, and is re-wrapped
// in its source OSC-8 hyperlink if one covered the whole input line.
func WrapLines(lines []string, width int, keepWords bool) []string {
	if width <= 0 {
		width = 1
	}
	var out []string
	for _, line := range lines {
		out = append(out, wrapOne(line, width, keepWords)...)
	}
	if len(out) == 0 {
		out = []string{strings.Repeat(" ", width)}
	}
	return out
}

func wrapOne(line string, width int, keepWords bool) []string {
	open, inner, closeSeq, hadLink := gwtext.SplitHyperlink(line)
	var pieces []string
	if keepWords {
		pieces = wrapKeepWords(inner, width)
	} else {
		pieces = wrapHard(inner, width)
	}
	for i, p := range pieces {
		padded := PadRight(p, width)
		if hadLink {
			padded = gwtext.WrapHyperlink(open, padded, closeSeq)
		}
		pieces[i] = padded
	}
	return pieces
}

// wrapHard cuts s into successive width-wide visual chunks, carrying ANSI
// style state across chunk boundaries so every chunk is self-contained. A
// rune that doesn't fit the remaining columns of a chunk is dropped rather
// than carried into the next chunk, and the gap it leaves is padded with the
// replacement character instead of left short.
func wrapHard(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	var out []string
	tracker := gwtext.NewStyleTracker()
	remaining := s
	for remaining != "" {
		prefix := tracker.OpeningPrefix()
		chunk, rest, w, dropped := cutChunk(remaining, width, tracker)
		if dropped && w < width {
			chunk += strings.Repeat(string(gwtext.ReplacementChar), width-w)
		}
		out = append(out, prefix+chunk+tracker.ClosingSuffix())
		remaining = rest
	}
	return out
}

// cutChunk consumes escape sequences (feeding tracker, costing no width)
// and up to width visual columns of content from s, returning the consumed
// chunk, the remainder, the chunk's visual width, and whether it had to
// discard a rune that was too wide to join the chunk. A discarded rune is
// consumed (not left in rest) and never re-emitted, matching how a wide-rune
// overflow is replaced and skipped rather than carried to the next line.
func cutChunk(s string, width int, tracker *gwtext.StyleTracker) (chunk, rest string, visW int, dropped bool) {
	w := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			if seq, start, end, ok := gwtext.NextEscape(s, i); ok && start == i {
				tracker.Feed(seq)
				i = end
				continue
			}
		}
		if w == width {
			break
		}
		r, size := decodeRuneAt(s, i)
		cw := runeVisualWidth(r)
		if w+cw > width {
			dropped = true
			chunkEnd := i
			i += size
			return s[:chunkEnd], s[i:], w, dropped
		}
		w += cw
		i += size
	}
	return s[:i], s[i:], w, dropped
}

// wrapKeepWords walks s's Unicode word boundaries (UAX #29, via uax29/v2)
// and packs the non-whitespace tokens into lines of at most width visual
// columns, breaking a single over-long word across multiple lines via
// wrapHard. Whitespace tokens are collapsed to the single joining space
// wrapOne's caller expects between packed words, so runs of tabs or
// multiple spaces in the source don't inflate measured width.
func wrapKeepWords(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	tokens := wordTokens(s)
	var out []string
	var cur strings.Builder
	curW := 0
	flush := func() {
		out = append(out, cur.String())
		cur.Reset()
		curW = 0
	}
	for _, word := range tokens {
		ww := gwtext.Width(word)
		if ww > width {
			if cur.Len() > 0 {
				flush()
			}
			out = append(out, wrapHard(word, width)...)
			continue
		}
		extra := ww
		if cur.Len() > 0 {
			extra++ // the joining space
		}
		if curW+extra > width {
			flush()
			cur.WriteString(word)
			curW = ww
			continue
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
			curW++
		}
		cur.WriteString(word)
		curW += ww
	}
	if cur.Len() > 0 || len(out) == 0 {
		flush()
	}
	return out
}
