package gwtext

// StyleTracker replays ANSI SGR sequences encountered while walking a
// string so callers that split it into pieces (word-wrap, line-iteration)
// can close whatever is open at a split point and re-open it on the next
// piece. It is the exported form of ansiTracker for use by gwwrap and
// gwrender.
type StyleTracker struct {
	inner ansiTracker
}

// NewStyleTracker returns a tracker with nothing open.
func NewStyleTracker() *StyleTracker { return &StyleTracker{} }

// Feed applies one escape sequence, as returned by NextEscape, to the
// tracker's state.
func (t *StyleTracker) Feed(seq string) { t.inner.Feed(seq) }

// ClosingSuffix returns the escape sequence that closes every style
// category currently open.
func (t *StyleTracker) ClosingSuffix() string { return t.inner.ClosingSuffix() }

// OpeningPrefix returns the escape sequence that re-establishes every style
// category currently open.
func (t *StyleTracker) OpeningPrefix() string { return openingPrefix(&t.inner) }

// NextEscape returns the next ANSI escape sequence in s starting at or
// after offset, and its [start,end) byte range, or ok=false if there is
// none.
func NextEscape(s string, offset int) (seq string, start, end int, ok bool) {
	loc := ansiPattern.FindStringIndex(s[offset:])
	if loc == nil {
		return "", 0, 0, false
	}
	return s[offset+loc[0] : offset+loc[1]], offset + loc[0], offset + loc[1], true
}
