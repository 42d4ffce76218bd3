// Package gwrender implements the streaming renderer: a single linear pass
// emitting margins, split lines, and per-cell content lines, with support
// for column/row spans and ANSI border coloring.
package gwrender

import (
	"io"
	"strings"

	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwborder"
	"github.com/olekukonko/gridwriter/gwcolor"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
	"github.com/olekukonko/gridwriter/gwtext"
	"github.com/olekukonko/gridwriter/gwwrap"
)

// Table is the fully solved view the renderer consumes: resolved column
// widths and row heights, the border model (glyphs and an optional
// parallel color model), the configuration store, and the per-position
// content cache built by gwcontent.
type Table struct {
	Rows, Cols int
	Config     *gwconfig.Config
	Cells      map[gw.Position]gwcontent.Cell
	Visible    *gwcontent.Visibility
	Borders    *gwborder.Model[string]
	Colors     *gwborder.Model[gwcolor.Color] // nil disables color
	ColWidths  []int
	RowHeights []int
}

// Renderer streams a Table to an io.Writer.
type Renderer struct {
	t *Table
	w io.Writer
}

// New builds a Renderer for t.
func New(t *Table) *Renderer { return &Renderer{t: t} }

// Render writes the whole table to w.
func (r *Renderer) Render(w io.Writer) error {
	r.w = w
	t := r.t
	totalWidth := r.totalWidth()

	if err := r.emitMargin(t.Config.Margin.Top, totalWidth); err != nil {
		return err
	}
	for row := 0; row < t.Rows; row++ {
		if t.Borders.HasHorizontal(row) {
			if err := r.emitSplitLine(row); err != nil {
				return err
			}
		}
		for sub := 0; sub < t.RowHeights[row]; sub++ {
			if err := r.emitContentLine(row, sub); err != nil {
				return err
			}
		}
	}
	if t.Borders.HasHorizontal(t.Rows) {
		if err := r.emitSplitLine(t.Rows); err != nil {
			return err
		}
	}
	return r.emitMargin(t.Config.Margin.Bottom, totalWidth)
}

func (r *Renderer) totalWidth() int {
	t := r.t
	borders := 0
	for c := 0; c <= t.Cols; c++ {
		if t.Borders.HasVertical(c) {
			borders++
		}
	}
	sum := t.Config.Margin.Left.Size + t.Config.Margin.Right.Size + borders
	for _, w := range t.ColWidths {
		sum += w
	}
	return sum
}

func (r *Renderer) emitMargin(ind gwconfig.Indent, width int) error {
	if ind.Size <= 0 {
		return nil
	}
	fill := ind.Fill
	if fill == 0 {
		fill = ' '
	}
	line := strings.Repeat(string(fill), width) + "\n"
	for i := 0; i < ind.Size; i++ {
		if err := r.write(line); err != nil {
			return err
		}
	}
	return nil
}

// emitSplitLine draws the horizontal border line above grid row r (r may
// equal t.Rows for the bottom-most line), overlaying any override line
// text for that row from the left. A column whose boundary at r sits
// strictly inside an active row span gets its Horizontal fill blanked
// instead, so the spanned cell reads as one unbroken region.
func (r *Renderer) emitSplitLine(row int) error {
	t := r.t
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", t.Config.Margin.Left.Size))
	for c := 0; c < t.Cols; c++ {
		b.WriteString(r.colorizeBorder(t.Borders.GetIntersection(row, c), r.intersectionColor(row, c)))
		if t.Visible.IsRowOverridden(row, c) {
			b.WriteString(strings.Repeat(" ", t.ColWidths[c]))
			continue
		}
		glyph, _ := t.Borders.GetHorizontal(row, c)
		b.WriteString(r.colorizeBorder(strings.Repeat(glyph, t.ColWidths[c]), r.horizontalColor(row, c)))
	}
	b.WriteString(r.colorizeBorder(t.Borders.GetIntersection(row, t.Cols), r.intersectionColor(row, t.Cols)))
	line := overlayOverride(b.String(), t.Config.OverrideLines[row])
	line += strings.Repeat(" ", t.Config.Margin.Right.Size)
	return r.write(line + "\n")
}

// overlayOverride draws text over base from the left, consuming one
// visual column of base per visual column of text, leaving the remainder
// of base untouched. text longer than base is silently cut.
func overlayOverride(base, text string) string {
	if text == "" {
		return base
	}
	baseW := gwtext.Width(base)
	textW := gwtext.Width(text)
	if textW > baseW {
		text = gwtext.CutString(text, baseW)
	}
	prefixLen, _, _ := gwtext.SplitAtVisual(base, gwtext.Width(text))
	return text + base[prefixLen:]
}

func (r *Renderer) emitContentLine(row, sub int) error {
	t := r.t
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", t.Config.Margin.Left.Size))
	for c := 0; c < t.Cols; c++ {
		if t.Visible.IsColOverridden(row, c) {
			continue
		}
		vg, _ := t.Borders.GetVertical(row, c)
		b.WriteString(r.colorizeBorder(vg, r.verticalColor(row, c)))
		if t.Visible.IsRowOverridden(row, c) {
			b.WriteString(strings.Repeat(" ", t.ColWidths[c]))
			continue
		}
		b.WriteString(r.cellLine(row, c, sub))
	}
	vg, _ := t.Borders.GetVertical(row, t.Cols)
	b.WriteString(r.colorizeBorder(vg, r.verticalColor(row, t.Cols)))
	b.WriteString(strings.Repeat(" ", t.Config.Margin.Right.Size))
	return r.write(b.String() + "\n")
}

func (r *Renderer) colorizeBorder(glyph string, c gwcolor.Color) string {
	return c.Wrap(glyph)
}

func (r *Renderer) verticalColor(row, col int) gwcolor.Color {
	if r.t.Colors == nil {
		return gwcolor.Color{}
	}
	c, _ := r.t.Colors.GetVertical(row, col)
	return c
}

func (r *Renderer) horizontalColor(row, col int) gwcolor.Color {
	if r.t.Colors == nil {
		return gwcolor.Color{}
	}
	c, _ := r.t.Colors.GetHorizontal(row, col)
	return c
}

func (r *Renderer) intersectionColor(row, col int) gwcolor.Color {
	if r.t.Colors == nil {
		return gwcolor.Color{}
	}
	return r.t.Colors.GetIntersection(row, col)
}

// cellLine assembles sub-line `sub` of the cell anchored at (row, col),
// already wrapped/truncated by the caller to fit its solved width.
func (r *Renderer) cellLine(row, col, sub int) string {
	t := r.t
	colSpan := t.Config.ColSpanAt(row, col)
	width := 0
	for k := col; k < col+colSpan; k++ {
		width += t.ColWidths[k]
	}
	for k := col + 1; k < col+colSpan; k++ {
		if t.Borders.HasVertical(k) {
			width++
		}
	}

	cell := t.Cells[gw.Position{Row: row, Col: col}]
	fmtg := t.Config.Formatting.Lookup(row, col)
	lines := cell.Lines
	if fmtg.VerticalTrim || fmtg.HorizontalTrim {
		strategy := gwwrap.TrimNone
		switch {
		case fmtg.HorizontalTrim && fmtg.VerticalTrim:
			strategy = gwwrap.TrimBoth
		case fmtg.HorizontalTrim:
			strategy = gwwrap.TrimHorizontal
		case fmtg.VerticalTrim:
			strategy = gwwrap.TrimVertical
		}
		lines = gwwrap.TrimLines(lines, strategy)
	}

	pad := t.Config.Padding.Lookup(row, col)
	rowHeight := t.RowHeights[row]
	contentHeight := rowHeight - pad.Top.Size - pad.Bottom.Size
	if contentHeight < 0 {
		contentHeight = 0
	}

	valign := t.Config.VAlign.Lookup(row, col)
	topPad := pad.Top.Size + vOffset(valign, len(lines), contentHeight)

	var text string
	idx := sub - topPad
	if idx >= 0 && idx < len(lines) {
		text = lines[idx]
	}

	if !fmtg.AllowLinesAlignment {
		if w := gwtext.Width(text); w < cell.MaxWidth {
			text += strings.Repeat(" ", cell.MaxWidth-w)
		}
	}

	halign := t.Config.HAlign.Lookup(row, col)
	aligned := align(text, width-pad.Left.Size-pad.Right.Size, halign)
	body := strings.Repeat(string(orFill(pad.Left)), pad.Left.Size) + aligned +
		strings.Repeat(string(orFill(pad.Right)), pad.Right.Size)

	return body
}

func orFill(ind gwconfig.Indent) rune {
	if ind.Fill == 0 {
		return ' '
	}
	return ind.Fill
}

func vOffset(v gwconfig.VAlign, contentLines, contentHeight int) int {
	extra := contentHeight - contentLines
	if extra <= 0 {
		return 0
	}
	switch v {
	case gwconfig.VAlignBottom:
		return extra
	case gwconfig.VAlignCenter:
		return extra / 2
	default:
		return 0
	}
}

func align(s string, width int, a gwconfig.Align) string {
	if width <= 0 {
		return ""
	}
	w := gwtext.Width(s)
	if w > width {
		return gwtext.CutString(s, width)
	}
	free := width - w
	switch a {
	case gwconfig.AlignRight:
		return strings.Repeat(" ", free) + s
	case gwconfig.AlignCenter:
		left := free / 2
		right := free - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", free)
	}
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}
