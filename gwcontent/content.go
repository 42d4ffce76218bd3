// Package gwcontent builds the per-visible-cell line cache the solver and
// renderer both read from.
package gwcontent

import (
	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwtext"
)

// Cell holds the precomputed lines of one visible cell's text.
type Cell struct {
	Lines      []string
	LinesWidth []int
	MaxWidth   int
}

// Visibility answers whether a position is visible (the anchor of its span,
// or not spanned at all) given a Config's span tables.
type Visibility struct {
	cfg *gwconfig.Config
}

// NewVisibility builds a Visibility checker bound to cfg.
func NewVisibility(cfg *gwconfig.Config) *Visibility { return &Visibility{cfg: cfg} }

// IsSimple reports whether (r, c) is not covered by any span (its own or
// another's).
func (v *Visibility) IsSimple(r, c int) bool {
	if v.cfg.ColSpanAt(r, c) > 1 || v.cfg.RowSpanAt(r, c) > 1 {
		return false // anchor of a span: covered by its own span
	}
	return !v.IsOverridden(r, c)
}

// IsColOverridden reports whether (r, c) is absorbed into a column span
// anchored earlier in the same row: its visual space was already emitted
// as part of the anchor's combined width, so the renderer skips it outright.
func (v *Visibility) IsColOverridden(r, c int) bool {
	for pos, span := range v.cfg.ColSpans {
		if pos.Row == r && c > pos.Col && c < pos.Col+span {
			return true
		}
	}
	return false
}

// IsRowOverridden reports whether (r, c) is absorbed into a row span
// anchored in an earlier row of the same column. Unlike a column-span
// absorption, this position sits on its own printed line, so the renderer
// still owes it a border and blank cell width rather than skipping it.
func (v *Visibility) IsRowOverridden(r, c int) bool {
	for pos, span := range v.cfg.RowSpans {
		if pos.Col == c && r > pos.Row && r < pos.Row+span {
			return true
		}
	}
	return false
}

// IsOverridden reports whether (r, c) is covered by a span anchored
// elsewhere (and is therefore not independently visible): it is
// IsColOverridden or IsRowOverridden. Only the anchor's own row (for a
// column span) and own column (for a row span) are checked; a position that
// an anchor with both spans would reach diagonally is not reported.
func (v *Visibility) IsOverridden(r, c int) bool {
	return v.IsColOverridden(r, c) || v.IsRowOverridden(r, c)
}

// IsVisible is the negation of IsOverridden.
func (v *Visibility) IsVisible(r, c int) bool { return !v.IsOverridden(r, c) }

// Build produces the Cell cache for one visible position's raw text,
// splitting it into ANSI-aware lines and measuring each with tab expansion.
func Build(text string, tabWidth int) Cell {
	lines := gwtext.LineIter(text)
	widths := make([]int, len(lines))
	max := 0
	for i, line := range lines {
		expanded := gwtext.TabExpand(line, tabWidth)
		w := gwtext.Width(expanded)
		widths[i] = w
		if w > max {
			max = w
		}
	}
	return Cell{Lines: lines, LinesWidth: widths, MaxWidth: max}
}
