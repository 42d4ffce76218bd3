// Package gwsolve computes column widths and row heights: base widths from
// content, span-aware expansion, and the total-width sum. Enforcing a target
// total width is done by the caller (the root package's width policy).
package gwsolve

import (
	"sort"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
)

// Grid is the minimal read-only view the solver needs over the table.
type Grid struct {
	Rows, Cols int
	Cells      map[gw.Position]gwcontent.Cell
	Config     *gwconfig.Config
	Visible    *gwcontent.Visibility
}

// hPad returns the left+right indent size for a position; vPad the
// top+bottom size.
func (g *Grid) hPad(r, c int) int {
	p := g.Config.Padding.Lookup(r, c)
	return p.Left.Size + p.Right.Size
}

func (g *Grid) vPad(r, c int) int {
	p := g.Config.Padding.Lookup(r, c)
	return p.Top.Size + p.Bottom.Size
}

// ColumnWidths computes the final content width of every column: base
// widths from visible cells that anchor no column span, then span
// expansion, sorted by ascending span length then ascending (row, col).
func ColumnWidths(g *Grid, interiorVerticalBorders func(from, to int) int) []int {
	widths := make([]int, g.Cols)
	for c := 0; c < g.Cols; c++ {
		max := 0
		for r := 0; r < g.Rows; r++ {
			if !g.Visible.IsVisible(r, c) || g.Config.ColSpanAt(r, c) > 1 {
				continue
			}
			need := cellWidth(g, r, c)
			if need > max {
				max = need
			}
		}
		widths[c] = max
	}

	type spanEntry struct {
		r, c, span int
	}
	var spans []spanEntry
	for pos, span := range g.Config.ColSpans {
		spans = append(spans, spanEntry{pos.Row, pos.Col, span})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].span != spans[j].span {
			return spans[i].span < spans[j].span
		}
		if spans[i].r != spans[j].r {
			return spans[i].r < spans[j].r
		}
		return spans[i].c < spans[j].c
	})

	for _, sp := range spans {
		need := cellWidth(g, sp.r, sp.c)
		sum := 0
		for k := sp.c; k < sp.c+sp.span; k++ {
			sum += widths[k]
		}
		if interiorVerticalBorders != nil {
			sum += interiorVerticalBorders(sp.c, sp.c+sp.span)
		}
		if sum < need {
			distribute(widths[sp.c:sp.c+sp.span], need-sum)
		}
	}

	return widths
}

func cellWidth(g *Grid, r, c int) int {
	cell, ok := g.Cells[gw.Position{Row: r, Col: c}]
	if !ok {
		return g.hPad(r, c)
	}
	return cell.MaxWidth + g.hPad(r, c)
}

// distribute spreads extra as evenly as possible across widths, giving any
// remainder to the first (leftmost) element.
func distribute(widths []int, extra int) {
	if len(widths) == 0 || extra <= 0 {
		return
	}
	share := extra / len(widths)
	remainder := extra % len(widths)
	for i := range widths {
		widths[i] += share
		if i == 0 {
			widths[i] += remainder
		}
	}
}

// RowHeights computes the final line-count height of every row: base
// heights from visible cells that anchor no row span, then row-span
// expansion analogous to ColumnWidths.
func RowHeights(g *Grid) []int {
	heights := make([]int, g.Rows)
	for r := 0; r < g.Rows; r++ {
		max := 0
		for c := 0; c < g.Cols; c++ {
			if !g.Visible.IsVisible(r, c) || g.Config.RowSpanAt(r, c) > 1 {
				continue
			}
			need := cellHeight(g, r, c)
			if need > max {
				max = need
			}
		}
		heights[r] = max
	}

	type spanEntry struct {
		r, c, span int
	}
	var spans []spanEntry
	for pos, span := range g.Config.RowSpans {
		spans = append(spans, spanEntry{pos.Row, pos.Col, span})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].span != spans[j].span {
			return spans[i].span < spans[j].span
		}
		if spans[i].r != spans[j].r {
			return spans[i].r < spans[j].r
		}
		return spans[i].c < spans[j].c
	})

	for _, sp := range spans {
		need := cellHeight(g, sp.r, sp.c)
		sum := 0
		for k := sp.r; k < sp.r+sp.span; k++ {
			sum += heights[k]
		}
		if sum < need {
			distribute(heights[sp.r:sp.r+sp.span], need-sum)
		}
	}

	return heights
}

func cellHeight(g *Grid, r, c int) int {
	cell, ok := g.Cells[gw.Position{Row: r, Col: c}]
	lines := 1
	if ok {
		lines = len(cell.Lines)
		if lines == 0 {
			lines = 1
		}
	}
	return lines + g.vPad(r, c)
}

// TotalWidth sums column widths plus the count of structural vertical
// borders (including the two outer ones) plus the horizontal margin.
func TotalWidth(widths []int, verticalBorderCount, marginLeft, marginRight int) int {
	sum := marginLeft + marginRight + verticalBorderCount
	for _, w := range widths {
		sum += w
	}
	return sum
}
