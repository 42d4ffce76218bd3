package gwrender

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwborder"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
	"github.com/olekukonko/gridwriter/gwstyle"
)

func checkEqual(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func buildTable(cfg *gwconfig.Config, cells map[string]string) *Table {
	visible := gwcontent.NewVisibility(cfg)
	built := make(map[gw.Position]gwcontent.Cell)
	for k, v := range cells {
		parts := strings.SplitN(k, ",", 2)
		r, c := int(parts[0][0]-'0'), int(parts[1][0]-'0')
		built[gw.Position{Row: r, Col: c}] = gwcontent.Build(v, cfg.TabWidth)
	}
	borders := gwborder.NewModel[string](cfg.Rows, cfg.Cols, gwstyle.Frame(gwstyle.ASCII))
	return &Table{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Config:  cfg,
		Cells:   built,
		Visible: visible,
		Borders: borders,
	}
}

func TestRenderSimple2x2ASCII(t *testing.T) {
	cfg := gwconfig.New(2, 2)
	tbl := buildTable(cfg, map[string]string{
		"0,0": "A", "0,1": "B",
		"1,0": "C", "1,1": "D",
	})
	tbl.ColWidths = []int{3, 3}
	tbl.RowHeights = []int{1, 1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "" +
		"+---+---+\n" +
		"| A | B |\n" +
		"+---+---+\n" +
		"| C | D |\n" +
		"+---+---+\n"
	checkEqual(t, buf.String(), want)
}

func TestRenderRightAlign(t *testing.T) {
	cfg := gwconfig.New(1, 1)
	cfg.SetAlign(gw.Global(), gwconfig.AlignRight)
	tbl := buildTable(cfg, map[string]string{"0,0": "A"})
	tbl.ColWidths = []int{5}
	tbl.RowHeights = []int{1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "" +
		"+-----+\n" +
		"|   A |\n" +
		"+-----+\n"
	checkEqual(t, buf.String(), want)
}

func TestRenderOverrideLine(t *testing.T) {
	cfg := gwconfig.New(1, 1)
	cfg.SetOverrideLine(0, "[TOP]")
	tbl := buildTable(cfg, map[string]string{"0,0": "A"})
	tbl.ColWidths = []int{3}
	tbl.RowHeights = []int{1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasPrefix(lines[0], "[TOP]") {
		t.Fatalf("expected overlay at start of first line, got %q", lines[0])
	}
}

func TestRenderRowSpanBlanksInteriorBoundary(t *testing.T) {
	cfg := gwconfig.New(2, 2)
	cfg.SetRowSpan(0, 0, 2)
	tbl := buildTable(cfg, map[string]string{"0,0": "A", "0,1": "B", "1,1": "D"})
	tbl.ColWidths = []int{3, 3}
	tbl.RowHeights = []int{1, 1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "" +
		"+---+---+\n" +
		"| A | B |\n" +
		"+   +---+\n" +
		"|   | D |\n" +
		"+---+---+\n"
	checkEqual(t, buf.String(), want)
}

func TestRenderIdenticalSpanStructureIsDeterministic(t *testing.T) {
	cfg := gwconfig.New(2, 3)
	cfg.SetColSpan(0, 0, 2)
	cfg.SetColSpan(1, 0, 2)
	tbl := buildTable(cfg, map[string]string{
		"0,0": "wide", "0,2": "X",
		"1,0": "wide", "1,2": "X",
	})
	tbl.ColWidths = []int{3, 3, 3}
	tbl.RowHeights = []int{1, 1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %v", len(lines), lines)
	}
	// rows 0 and 1 share identical span structure and identical content, so
	// their content lines (indices 1 and 3) must be byte-identical.
	checkEqual(t, lines[1], lines[3])
}

func TestRenderAllowLinesAlignmentOffBlockJustifies(t *testing.T) {
	cfg := gwconfig.New(1, 1)
	cfg.SetAlign(gw.Global(), gwconfig.AlignCenter)
	cfg.SetFormatting(gw.Global(), gwconfig.Formatting{AllowLinesAlignment: false})
	tbl := buildTable(cfg, map[string]string{"0,0": "hi\nworld"})
	tbl.ColWidths = []int{9}
	tbl.RowHeights = []int{2}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	// both content lines must share the same left margin: the shorter line
	// ("hi") is padded out to the longer line's width ("world") before the
	// cell-wide centering is applied, so the block moves as one unit.
	hiLine, worldLine := lines[1], lines[2]
	hiMargin := strings.Index(hiLine, "h")
	worldMargin := strings.Index(worldLine, "w")
	if hiMargin != worldMargin {
		t.Fatalf("expected matching left margins, got %q and %q", hiLine, worldLine)
	}
}

func TestRenderColSpan(t *testing.T) {
	cfg := gwconfig.New(1, 2)
	cfg.SetColSpan(0, 0, 2)
	tbl := buildTable(cfg, map[string]string{"0,0": "wide"})
	tbl.ColWidths = []int{3, 3}
	tbl.RowHeights = []int{1}

	var buf bytes.Buffer
	if err := New(tbl).Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "wide") {
		t.Fatalf("expected spanned content present: %s", out)
	}
	if strings.Count(out, "|") != 2 {
		t.Fatalf("expected the spanned column's interior border to be skipped, got: %s", out)
	}
}
