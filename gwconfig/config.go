// Package gwconfig is the configuration store: it aggregates the entity
// maps for padding, alignment and formatting together with a margin, a
// span table, tab width, and override split-line texts into one
// per-section settings object a Grid can hand to the solver and renderer.
package gwconfig

import "github.com/olekukonko/gridwriter/gw"

// Align is horizontal text alignment within a cell.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// VAlign is vertical text alignment within a cell.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignBottom
	VAlignCenter
)

// Indent is a single padding/margin edge: a fill rune repeated size times.
type Indent struct {
	Fill rune
	Size int
}

// Padding is the four edges of a cell's padding.
type Padding struct {
	Top, Bottom, Left, Right Indent
}

// Margin has the same shape as Padding but applies once, to the table as a
// whole.
type Margin = Padding

// Formatting holds the per-cell trim/alignment boolean flags.
type Formatting struct {
	HorizontalTrim      bool
	VerticalTrim        bool
	AllowLinesAlignment bool
}

// Behavior carries ambient engine-wide switches: ordinary Go library
// ergonomics rather than part of the table's own layout data model.
type Behavior struct {
	AutoHide bool
	Debug    bool
}

// Config aggregates every entity-scoped setting a Grid needs. Build one
// with New and mutate it with the Set* methods; every setter is
// narrow (touches one entity) and total (never fails).
type Config struct {
	Rows, Cols int

	Padding    *gw.EntityMap[Padding]
	HAlign     *gw.EntityMap[Align]
	VAlign     *gw.EntityMap[VAlign]
	Formatting *gw.EntityMap[Formatting]

	ColSpans map[gw.Position]int
	RowSpans map[gw.Position]int

	Margin   Margin
	TabWidth int

	// OverrideLines maps a row index to text drawn over that row's split
	// line, consuming border characters from the left.
	OverrideLines map[int]string

	Behavior Behavior
}

// defaultPadding is one space of left/right padding, none top/bottom.
func defaultPadding() Padding {
	return Padding{
		Left:  Indent{Fill: ' ', Size: 1},
		Right: Indent{Fill: ' ', Size: 1},
	}
}

// New creates a Config for a rows x cols grid with sensible defaults: left
// alignment, top vertical alignment, one space of horizontal padding,
// horizontal trim on, tab width 4.
func New(rows, cols int) *Config {
	return &Config{
		Rows:          rows,
		Cols:          cols,
		Padding:       gw.New(defaultPadding()),
		HAlign:        gw.New(AlignLeft),
		VAlign:        gw.New(VAlignTop),
		Formatting:    gw.New(Formatting{HorizontalTrim: true, AllowLinesAlignment: true}),
		ColSpans:      make(map[gw.Position]int),
		RowSpans:      make(map[gw.Position]int),
		TabWidth:      4,
		OverrideLines: make(map[int]string),
	}
}

// SetPadding sets padding at the given scope.
func (c *Config) SetPadding(e gw.Entity, p Padding) { c.Padding.Set(e, p) }

// SetAlign sets horizontal alignment at the given scope.
func (c *Config) SetAlign(e gw.Entity, a Align) { c.HAlign.Set(e, a) }

// SetVAlign sets vertical alignment at the given scope.
func (c *Config) SetVAlign(e gw.Entity, a VAlign) { c.VAlign.Set(e, a) }

// SetFormatting sets formatting flags at the given scope.
func (c *Config) SetFormatting(e gw.Entity, f Formatting) { c.Formatting.Set(e, f) }

// SetColSpan clamps and records a column-span anchored at (r, c). A span
// value <= 1 is equivalent to no entry and removes any existing span.
func (c *Config) SetColSpan(r, col, span int) {
	if span <= 1 {
		delete(c.ColSpans, gw.Position{Row: r, Col: col})
		return
	}
	if col+span > c.Cols {
		span = c.Cols - col
	}
	if span <= 1 {
		delete(c.ColSpans, gw.Position{Row: r, Col: col})
		return
	}
	c.ColSpans[gw.Position{Row: r, Col: col}] = span
}

// SetRowSpan is SetColSpan's row-wise counterpart.
func (c *Config) SetRowSpan(r, col, span int) {
	if span <= 1 {
		delete(c.RowSpans, gw.Position{Row: r, Col: col})
		return
	}
	if r+span > c.Rows {
		span = c.Rows - r
	}
	if span <= 1 {
		delete(c.RowSpans, gw.Position{Row: r, Col: col})
		return
	}
	c.RowSpans[gw.Position{Row: r, Col: col}] = span
}

// SetOverrideLine records text to draw over row r's split line.
func (c *Config) SetOverrideLine(r int, text string) {
	if text == "" {
		delete(c.OverrideLines, r)
		return
	}
	c.OverrideLines[r] = text
}

// ColSpanAt returns the column span anchored at (r, c), or 1 if none.
func (c *Config) ColSpanAt(r, col int) int {
	if s, ok := c.ColSpans[gw.Position{Row: r, Col: col}]; ok {
		return s
	}
	return 1
}

// RowSpanAt returns the row span anchored at (r, c), or 1 if none.
func (c *Config) RowSpanAt(r, col int) int {
	if s, ok := c.RowSpans[gw.Position{Row: r, Col: col}]; ok {
		return s
	}
	return 1
}
