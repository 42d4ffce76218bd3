package gwsolve

import (
	"testing"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
)

func buildGrid(cfg *gwconfig.Config, cells map[gw.Position]string) *Grid {
	built := make(map[gw.Position]gwcontent.Cell)
	for pos, text := range cells {
		built[pos] = gwcontent.Build(text, cfg.TabWidth)
	}
	return &Grid{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Cells:   built,
		Config:  cfg,
		Visible: gwcontent.NewVisibility(cfg),
	}
}

func TestColumnWidthsSimple(t *testing.T) {
	cfg := gwconfig.New(2, 2)
	g := buildGrid(cfg, map[gw.Position]string{
		{Row: 0, Col: 0}: "a",
		{Row: 0, Col: 1}: "bbbb",
		{Row: 1, Col: 0}: "cc",
		{Row: 1, Col: 1}: "d",
	})
	widths := ColumnWidths(g, nil)
	// padding adds 1 left + 1 right to every cell's content width.
	if widths[0] != 4 {
		t.Fatalf("expected column 0 width 4 (max content 2 + 2 padding), got %d", widths[0])
	}
	if widths[1] != 6 {
		t.Fatalf("expected column 1 width 6 (max content 4 + 2 padding), got %d", widths[1])
	}
}

func TestColumnWidthsExpandForSpan(t *testing.T) {
	cfg := gwconfig.New(1, 2)
	cfg.SetColSpan(0, 0, 2)
	g := buildGrid(cfg, map[gw.Position]string{
		{Row: 0, Col: 0}: "a much wider value",
	})
	widths := ColumnWidths(g, func(from, to int) int { return to - from - 1 })
	sum := widths[0] + widths[1]
	need := gwcontent.Build("a much wider value", cfg.TabWidth).MaxWidth + 2
	if sum < need {
		t.Fatalf("expected spanned columns to expand to fit content, sum=%d need=%d", sum, need)
	}
}

func TestRowHeightsMultiline(t *testing.T) {
	cfg := gwconfig.New(2, 1)
	g := buildGrid(cfg, map[gw.Position]string{
		{Row: 0, Col: 0}: "one\ntwo\nthree",
		{Row: 1, Col: 0}: "solo",
	})
	heights := RowHeights(g)
	if heights[0] != 3 {
		t.Fatalf("expected row 0 height 3 (three lines, no vertical padding), got %d", heights[0])
	}
	if heights[1] != 1 {
		t.Fatalf("expected row 1 height 1, got %d", heights[1])
	}
}

func TestTotalWidth(t *testing.T) {
	got := TotalWidth([]int{3, 3}, 3, 0, 0)
	if got != 9 {
		t.Fatalf("expected total width 9, got %d", got)
	}
}
