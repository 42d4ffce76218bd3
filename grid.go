// Package gridwriter is a text-table layout and rendering engine: entity-
// scoped configuration, a border model, a width/height solver, a streaming
// renderer, and an HTML exporter, wired together by the Grid type.
package gridwriter

import (
	"io"

	"github.com/olekukonko/ll"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwborder"
	"github.com/olekukonko/gridwriter/gwcolor"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
	"github.com/olekukonko/gridwriter/gwhtml"
	"github.com/olekukonko/gridwriter/gwrender"
	"github.com/olekukonko/gridwriter/gwsolve"
	"github.com/olekukonko/gridwriter/gwstyle"
)

// Option configures ambient, non-data-model aspects of a Grid at
// construction time (logging). Data-model configuration (borders,
// alignment, spans, ...) goes through the Set* methods instead, so a Grid's
// content is always mutated through an explicit, narrow setter.
type Option func(*Grid)

// WithLogger attaches a namespaced debug logger.
func WithLogger(logger *ll.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger.Namespace("gridwriter")
		}
	}
}

// WithDebug toggles debug-level logging of solve/render decisions.
func WithDebug(on bool) Option {
	return func(g *Grid) { g.config.Behavior.Debug = on }
}

// WithAutoHide toggles automatic squeezing-out of columns that are blank in
// every row and touched by no span, applied on every subsequent Render.
func WithAutoHide(on bool) Option {
	return func(g *Grid) { g.config.Behavior.AutoHide = on }
}

// Grid owns a row source's extracted content, its configuration, and its
// border model, and produces Render/RenderHTML output on demand. Content
// caches and solved widths/heights are transient: every Render/RenderHTML
// call rebuilds them from the current config and cells, so mutating the
// Grid between renders is always safe.
type Grid struct {
	rows, cols int
	raw        map[gw.Position]string
	hasHeader  bool

	config  *gwconfig.Config
	borders *gwborder.Model[string]
	colors  *gwborder.Model[gwcolor.Color]
	width   WidthPolicy

	logger *ll.Logger
}

// New builds a Grid from source's full extent with default configuration:
// left alignment, top vertical alignment, one space of horizontal padding,
// an ASCII border preset.
func New(source RowSource, opts ...Option) *Grid {
	rows, cols := source.CountRows(), source.CountColumns()
	raw := make(map[gw.Position]string, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			raw[gw.Position{Row: r, Col: c}] = source.GetText(r, c)
		}
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		raw:       raw,
		hasHeader: source.HasHeader(),
		config:    gwconfig.New(rows, cols),
		borders:   gwborder.NewModel[string](rows, cols, gwstyle.Frame(gwstyle.ASCII)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// --- Border / theme configuration ---

// SetBorders replaces the global border preset; per-cell overrides and
// override lines survive unless ClearTheme is also called.
func (g *Grid) SetBorders(preset gwstyle.Name) {
	g.borders.SetGlobal(gwstyle.Frame(preset))
	g.debugf("SetBorders: %v", preset)
}

// SetBorder records a per-cell border-glyph override.
func (g *Grid) SetBorder(r, c int, sides gwborder.Sides[string]) {
	g.borders.SetOverride(r, c, sides)
}

// SetBorderColor records a per-cell border-color override. Lazily creates
// the parallel color model (borders and their colors are resolved through
// twin Model instances) on first use.
func (g *Grid) SetBorderColor(r, c int, sides gwborder.Sides[gwcolor.Color]) {
	if g.colors == nil {
		g.colors = gwborder.NewModel[gwcolor.Color](g.rows, g.cols, gwborder.Frame[gwcolor.Color]{})
	}
	g.colors.SetOverride(r, c, sides)
}

// SetSplitLine sets the structural override horizontal split line drawn
// above row r (r in 0..=Rows).
func (g *Grid) SetSplitLine(r int, line gwborder.Line[string]) {
	g.borders.SetRowLine(r, line)
}

// SetColSplitLine sets the structural override vertical split line drawn
// left of column c (c in 0..=Cols).
func (g *Grid) SetColSplitLine(c int, line gwborder.Line[string]) {
	g.borders.SetColLine(c, line)
}

// SetOverrideSplitLine draws arbitrary text over row r's split line,
// consuming border characters from the left.
func (g *Grid) SetOverrideSplitLine(r int, text string) {
	g.config.SetOverrideLine(r, text)
}

// ClearTheme drops every per-cell border override, override line and
// override split-line text, leaving only the current global preset.
func (g *Grid) ClearTheme() {
	g.borders.ClearOverrides()
	if g.colors != nil {
		g.colors.ClearOverrides()
	}
	g.config.OverrideLines = make(map[int]string)
}

// --- Padding / alignment / formatting ---

// SetPadding sets padding at the given entity scope.
func (g *Grid) SetPadding(e gw.Entity, p gwconfig.Padding) { g.config.SetPadding(e, p) }

// SetMargin sets the table-wide margin.
func (g *Grid) SetMargin(m gwconfig.Margin) { g.config.Margin = m }

// SetAlign sets horizontal alignment at the given entity scope.
func (g *Grid) SetAlign(e gw.Entity, a gwconfig.Align) { g.config.SetAlign(e, a) }

// SetVAlign sets vertical alignment at the given entity scope.
func (g *Grid) SetVAlign(e gw.Entity, a gwconfig.VAlign) { g.config.SetVAlign(e, a) }

// SetFormatting sets the trim/alignment behavior flags at the given entity
// scope.
func (g *Grid) SetFormatting(e gw.Entity, f gwconfig.Formatting) { g.config.SetFormatting(e, f) }

// SetTabWidth sets the table-wide tab-expansion width.
func (g *Grid) SetTabWidth(n int) { g.config.TabWidth = n }

// --- Spans ---

// SetColSpan anchors a column span of width span at (r, c); span<=1 clears
// any existing span, and an over-long span clamps to the grid's width.
func (g *Grid) SetColSpan(r, c, span int) { g.config.SetColSpan(r, c, span) }

// SetRowSpan is SetColSpan's row-wise counterpart.
func (g *Grid) SetRowSpan(r, c, span int) { g.config.SetRowSpan(r, c, span) }

// --- Bulk / lifecycle helpers ---

// Resize changes the grid's declared extent, clamping every existing span
// and discarding cell content outside the new bounds.
func (g *Grid) Resize(rows, cols int) {
	newRaw := make(map[gw.Position]string, rows*cols)
	for pos, text := range g.raw {
		if pos.Row < rows && pos.Col < cols {
			newRaw[pos] = text
		}
	}
	g.rows, g.cols = rows, cols
	g.raw = newRaw
	g.config.Rows, g.config.Cols = rows, cols
	for pos, span := range g.config.ColSpans {
		switch {
		case pos.Row >= rows || pos.Col >= cols:
			delete(g.config.ColSpans, pos)
		case pos.Col+span > cols:
			g.config.SetColSpan(pos.Row, pos.Col, cols-pos.Col)
		}
	}
	for pos, span := range g.config.RowSpans {
		switch {
		case pos.Row >= rows || pos.Col >= cols:
			delete(g.config.RowSpans, pos)
		case pos.Row+span > rows:
			g.config.SetRowSpan(pos.Row, pos.Col, rows-pos.Row)
		}
	}
	g.borders = gwborder.NewModel[string](rows, cols, g.borders.Global())
	if g.colors != nil {
		g.colors = gwborder.NewModel[gwcolor.Color](rows, cols, g.colors.Global())
	}
}

// SetText overwrites the raw content of one cell.
func (g *Grid) SetText(r, c int, text string) {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return
	}
	g.raw[gw.Position{Row: r, Col: c}] = text
}

// --- Rendering ---

func (g *Grid) buildContent() (map[gw.Position]gwcontent.Cell, *gwcontent.Visibility) {
	visible := gwcontent.NewVisibility(g.config)
	cells := make(map[gw.Position]gwcontent.Cell, len(g.raw))
	for pos, text := range g.raw {
		if !visible.IsVisible(pos.Row, pos.Col) {
			continue
		}
		cells[pos] = gwcontent.Build(text, g.config.TabWidth)
	}
	return cells, visible
}

func (g *Grid) interiorVerticalBorders(from, to int) int {
	n := 0
	for c := from + 1; c < to; c++ {
		if g.borders.HasVertical(c) {
			n++
		}
	}
	return n
}

// Render writes the fully solved, rendered table to w. When the Behavior
// AutoHide flag is set, columns that are blank in every row (and touched by
// no span) are squeezed out of this render's layout entirely; the Grid's
// own stored content and configuration are never mutated by this.
func (g *Grid) Render(w io.Writer) error {
	cells, visible := g.buildContent()

	if g.config.Behavior.AutoHide {
		if hidden := g.hiddenColumns(visible); len(hidden) > 0 {
			view := g.projectColumns(hidden)
			origCols, origConfig, origBorders, origColors, origRaw :=
				g.cols, g.config, g.borders, g.colors, g.raw
			g.cols, g.config, g.borders, g.colors, g.raw =
				view.cols, view.config, view.borders, view.colors, view.raw
			defer func() {
				g.cols, g.config, g.borders, g.colors, g.raw =
					origCols, origConfig, origBorders, origColors, origRaw
			}()
			cells, visible = g.buildContent()
			g.debugf("Render: AutoHide squeezed out columns %v", hidden)
		}
	}

	solveGrid := &gwsolve.Grid{
		Rows: g.rows, Cols: g.cols,
		Cells: cells, Config: g.config, Visible: visible,
	}
	colWidths := gwsolve.ColumnWidths(solveGrid, g.interiorVerticalBorders)
	rowHeights := gwsolve.RowHeights(solveGrid)
	rowHeights = g.applyWidthPolicy(colWidths, rowHeights, cells, visible)
	g.debugf("Render: colWidths=%v rowHeights=%v", colWidths, rowHeights)

	table := &gwrender.Table{
		Rows: g.rows, Cols: g.cols,
		Config: g.config, Cells: cells, Visible: visible,
		Borders: g.borders, Colors: g.colors,
		ColWidths: colWidths, RowHeights: rowHeights,
	}
	return gwrender.New(table).Render(w)
}

// RenderHTML writes the table as a nested HTML tag tree to w, splitting row
// 0 into a <thead> when the source reported HasHeader().
func (g *Grid) RenderHTML(w io.Writer, cfg gwhtml.Config) error {
	exp := gwhtml.NewExporter(w, g.config, cfg)

	var header, body []gwhtml.Row
	for r := 0; r < g.rows; r++ {
		row := gwhtml.Row{RowIndex: r, Raw: make(map[int]string, g.cols)}
		for c := 0; c < g.cols; c++ {
			row.Raw[c] = g.raw[gw.Position{Row: r, Col: c}]
		}
		if r == 0 && g.hasHeader {
			header = append(header, row)
			continue
		}
		body = append(body, row)
	}
	return exp.Export(header, body, nil)
}

func (g *Grid) debugf(format string, args ...any) {
	if g.logger == nil || !g.config.Behavior.Debug {
		return
	}
	g.logger.Debugf(format, args...)
}
