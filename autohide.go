package gridwriter

import (
	"strings"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwborder"
	"github.com/olekukonko/gridwriter/gwcolor"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
)

// hiddenColumns returns the columns eligible for auto-hide: every row's raw
// text trims to empty, and the column is never touched by a span (neither
// anchoring one nor absorbed into a neighbor's). A column touched by any
// span is always kept, even if its own anchor cell happens to be blank.
func (g *Grid) hiddenColumns(visible *gwcontent.Visibility) []int {
	var hidden []int
	for c := 0; c < g.cols; c++ {
		empty := true
		for r := 0; r < g.rows; r++ {
			if g.config.ColSpanAt(r, c) > 1 || g.config.RowSpanAt(r, c) > 1 || !visible.IsVisible(r, c) {
				empty = false
				break
			}
			if strings.TrimSpace(g.raw[gw.Position{Row: r, Col: c}]) != "" {
				empty = false
				break
			}
		}
		if empty {
			hidden = append(hidden, c)
		}
	}
	return hidden
}

// autoHideView is a column-projected rendering of a Grid with every entry
// of hiddenColumns squeezed out: fewer columns, remapped spans and
// per-column overrides, and a border model stripped of per-cell overrides
// (Render's AutoHide path chooses structural simplicity over preserving
// overrides anchored to columns that no longer exist).
type autoHideView struct {
	cols    int
	raw     map[gw.Position]string
	config  *gwconfig.Config
	borders *gwborder.Model[string]
	colors  *gwborder.Model[gwcolor.Color]
}

func (g *Grid) projectColumns(hidden []int) *autoHideView {
	drop := make(map[int]bool, len(hidden))
	for _, c := range hidden {
		drop[c] = true
	}
	colMap := make(map[int]int, g.cols-len(hidden))
	newCols := 0
	for c := 0; c < g.cols; c++ {
		if drop[c] {
			continue
		}
		colMap[c] = newCols
		newCols++
	}

	raw := make(map[gw.Position]string, len(g.raw))
	for pos, text := range g.raw {
		if nc, ok := colMap[pos.Col]; ok {
			raw[gw.Position{Row: pos.Row, Col: nc}] = text
		}
	}

	cfg := &gwconfig.Config{
		Rows:          g.rows,
		Cols:          newCols,
		Padding:       g.config.Padding.RemapColumns(colMap),
		HAlign:        g.config.HAlign.RemapColumns(colMap),
		VAlign:        g.config.VAlign.RemapColumns(colMap),
		Formatting:    g.config.Formatting.RemapColumns(colMap),
		ColSpans:      make(map[gw.Position]int, len(g.config.ColSpans)),
		RowSpans:      make(map[gw.Position]int, len(g.config.RowSpans)),
		Margin:        g.config.Margin,
		TabWidth:      g.config.TabWidth,
		OverrideLines: g.config.OverrideLines,
		Behavior:      g.config.Behavior,
	}
	for pos, span := range g.config.ColSpans {
		if nc, ok := colMap[pos.Col]; ok {
			cfg.ColSpans[gw.Position{Row: pos.Row, Col: nc}] = span
		}
	}
	for pos, span := range g.config.RowSpans {
		if nc, ok := colMap[pos.Col]; ok {
			cfg.RowSpans[gw.Position{Row: pos.Row, Col: nc}] = span
		}
	}

	view := &autoHideView{
		cols:    newCols,
		raw:     raw,
		config:  cfg,
		borders: gwborder.NewModel[string](g.rows, newCols, g.borders.Global()),
	}
	if g.colors != nil {
		view.colors = gwborder.NewModel[gwcolor.Color](g.rows, newCols, g.colors.Global())
	}
	return view
}
