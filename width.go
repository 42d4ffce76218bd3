package gridwriter

import (
	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwcontent"
	"github.com/olekukonko/gridwriter/gwtext"
	"github.com/olekukonko/gridwriter/gwwrap"
)

// WrapMode selects how column widths are brought down to a target total
// width: WrapTruncate cuts cell text, WrapWrap rewraps it onto additional
// lines.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapTruncate
	WrapWrap
)

// WidthPolicy is the table-wide total-width enforcement setting. Target<=0
// disables enforcement entirely (the default). Growth up to Target always
// widens columns only (MinWidth never rewrites text), regardless of Mode;
// Mode only selects the shrink strategy.
type WidthPolicy struct {
	Target          int
	Mode            WrapMode
	Priority        gwwrap.Priority
	KeepWords       bool
	Multiline       bool
	Suffix          string
	SuffixMode      gwwrap.SuffixMode
	SuffixLimitChar rune
}

// SetWidth installs a total-width enforcement policy, applied by every
// subsequent Render call; RenderHTML does not use it.
func (g *Grid) SetWidth(p WidthPolicy) { g.width = p }

// applyWidthPolicy adjusts colWidths in place toward g.width.Target and, for
// Truncate/Wrap shrinkage, rewrites the affected cells' cached lines so the
// renderer never sees content wider than its column. It returns the updated
// row heights, since Wrap can change a cell's line count.
func (g *Grid) applyWidthPolicy(colWidths, rowHeights []int, cells map[gw.Position]gwcontent.Cell, visible *gwcontent.Visibility) []int {
	p := g.width
	if p.Target <= 0 {
		return rowHeights
	}

	vBorders := g.interiorVerticalBorders(0, g.cols)
	if g.borders.HasVertical(0) {
		vBorders++
	}
	if g.borders.HasVertical(g.cols) {
		vBorders++
	}
	contentTarget := p.Target - vBorders - g.config.Margin.Left.Size - g.config.Margin.Right.Size

	mins := make([]int, g.cols)
	for c := range mins {
		pad := g.config.Padding.Lookup(0, c)
		mins[c] = pad.Left.Size + pad.Right.Size
	}

	sum := 0
	for _, w := range colWidths {
		sum += w
	}

	switch {
	case sum > contentTarget:
		gwwrap.Truncate(colWidths, mins, contentTarget, p.Priority)
		g.rewriteCells(colWidths, cells, visible)
		return g.recomputeRowHeights(cells, visible)
	case sum < contentTarget:
		gwwrap.MinWidth(colWidths, contentTarget, p.Priority)
	}
	return rowHeights
}

// recomputeRowHeights rebuilds every row's height from cells' current line
// counts, needed after rewriteCells may have changed how many lines a cell
// occupies (Wrap mode).
func (g *Grid) recomputeRowHeights(cells map[gw.Position]gwcontent.Cell, visible *gwcontent.Visibility) []int {
	heights := make([]int, g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !visible.IsVisible(r, c) {
				continue
			}
			cell := cells[gw.Position{Row: r, Col: c}]
			lines := len(cell.Lines)
			if lines == 0 {
				lines = 1
			}
			pad := g.config.Padding.Lookup(r, c)
			need := lines + pad.Top.Size + pad.Bottom.Size
			if need > heights[r] {
				heights[r] = need
			}
		}
	}
	return heights
}

// rewriteCells rewrites every visible cell's cached lines to fit its
// (possibly just-shrunk) spanned column width, per the table's WrapMode.
func (g *Grid) rewriteCells(colWidths []int, cells map[gw.Position]gwcontent.Cell, visible *gwcontent.Visibility) {
	p := g.width
	for pos, cell := range cells {
		r, c := pos.Row, pos.Col
		span := g.config.ColSpanAt(r, c)
		width := 0
		for k := c; k < c+span; k++ {
			width += colWidths[k]
		}
		width += g.interiorVerticalBorders(c, c+span)
		pad := g.config.Padding.Lookup(r, c)
		contentWidth := width - pad.Left.Size - pad.Right.Size
		if contentWidth < 1 {
			contentWidth = 1
		}

		var lines []string
		switch p.Mode {
		case WrapWrap:
			lines = gwwrap.WrapLines(cell.Lines, contentWidth, p.KeepWords)
		default:
			lines = gwwrap.TruncateText(cell.Lines, contentWidth, p.Suffix, p.SuffixMode, p.SuffixLimitChar, p.Multiline)
		}

		widths := make([]int, len(lines))
		max := 0
		for i, l := range lines {
			w := gwtext.Width(l)
			widths[i] = w
			if w > max {
				max = w
			}
		}
		cells[pos] = gwcontent.Cell{Lines: lines, LinesWidth: widths, MaxWidth: max}
	}
}
