// Package gwborder resolves, for every grid position, which border glyphs
// (and, in parallel, colors) apply — honoring per-cell overrides, per-row
// and per-column override lines, and a global preset.
package gwborder

import "github.com/olekukonko/gridwriter/gw"

// Sides is a single cell's border override. Each field carries its own
// presence flag, so a side set to T's zero value still counts as set. Only
// the four edges can be marked present (through the With* setters) and only
// they are consulted by Model; the corner fields are never read.
type Sides[T comparable] struct {
	Top, Bottom, Left, Right                       T
	TopLeft, TopRight, BottomLeft, BottomRight      T
	hasTop, hasBottom, hasLeft, hasRight            bool
	hasTopLeft, hasTopRight, hasBotLeft, hasBotRight bool
}

func (s Sides[T]) top() (T, bool)    { return s.Top, s.hasTop }
func (s Sides[T]) bottom() (T, bool) { return s.Bottom, s.hasBottom }
func (s Sides[T]) left() (T, bool)   { return s.Left, s.hasLeft }
func (s Sides[T]) right() (T, bool)  { return s.Right, s.hasRight }

// WithTop, WithBottom, WithLeft, WithRight set one side and mark it present,
// returning the modified value for fluent construction.
func (s Sides[T]) WithTop(v T) Sides[T]    { s.Top, s.hasTop = v, true; return s }
func (s Sides[T]) WithBottom(v T) Sides[T] { s.Bottom, s.hasBottom = v, true; return s }
func (s Sides[T]) WithLeft(v T) Sides[T]   { s.Left, s.hasLeft = v, true; return s }
func (s Sides[T]) WithRight(v T) Sides[T]  { s.Right, s.hasRight = v, true; return s }

// Line is the four-tuple describing an overridden horizontal or vertical
// split line: the repeating glyph, the interior intersection glyph, and the
// two end-connector glyphs.
type Line[T comparable] struct {
	Main, Intersection, Connector1, Connector2 T
	set                                        bool
}

// NewLine builds a set Line value.
func NewLine[T comparable](main, intersection, c1, c2 T) Line[T] {
	return Line[T]{Main: main, Intersection: intersection, Connector1: c1, Connector2: c2, set: true}
}

// Frame is the global preset: edges, interior lines, corners, and the five
// interior intersection glyphs (top T-junction, left/right T-junctions,
// cross, bottom T-junction).
type Frame[T comparable] struct {
	Top, Bottom, Left, Right  T
	Horizontal, Vertical      T
	TopLeft, TopRight         T
	BottomLeft, BottomRight   T
	MidLeft, Center, MidRight T
	TopMid, BottomMid         T

	// HeaderOnly restricts the interior Horizontal rule to the single
	// boundary below row 0, matching presets (psql, markdown) that draw one
	// separator under the header and none between subsequent rows.
	HeaderOnly bool
}

// Model resolves per-position border queries for a grid of the given
// dimensions from a Frame preset, per-cell overrides, and per-row/per-column
// override lines.
type Model[T comparable] struct {
	rows, cols int
	global     Frame[T]
	overrides  map[gw.Position]Sides[T]
	rowLines   map[int]Line[T]
	colLines   map[int]Line[T]
	zero       T
}

// NewModel creates a Model for a grid of rows x cols cells using preset as
// the global default.
func NewModel[T comparable](rows, cols int, preset Frame[T]) *Model[T] {
	return &Model[T]{
		rows:      rows,
		cols:      cols,
		global:    preset,
		overrides: make(map[gw.Position]Sides[T]),
		rowLines:  make(map[int]Line[T]),
		colLines:  make(map[int]Line[T]),
	}
}

// Global returns the model's current global preset.
func (m *Model[T]) Global() Frame[T] { return m.global }

// SetGlobal replaces the global preset, leaving per-cell overrides and
// override lines untouched (a builder-level "apply this theme" operation,
// as distinct from a per-position override).
func (m *Model[T]) SetGlobal(preset Frame[T]) { m.global = preset }

// ClearOverrides drops every per-cell border override and per-row/per-column
// override line, leaving only the global preset.
func (m *Model[T]) ClearOverrides() {
	m.overrides = make(map[gw.Position]Sides[T])
	m.rowLines = make(map[int]Line[T])
	m.colLines = make(map[int]Line[T])
}

// SetOverride records a per-cell border override, merging into any override
// already set for that cell (later sets win per side).
func (m *Model[T]) SetOverride(r, c int, sides Sides[T]) {
	pos := gw.Position{Row: r, Col: c}
	cur, ok := m.overrides[pos]
	if !ok {
		m.overrides[pos] = sides
		return
	}
	if sides.hasTop {
		cur.Top, cur.hasTop = sides.Top, true
	}
	if sides.hasBottom {
		cur.Bottom, cur.hasBottom = sides.Bottom, true
	}
	if sides.hasLeft {
		cur.Left, cur.hasLeft = sides.Left, true
	}
	if sides.hasRight {
		cur.Right, cur.hasRight = sides.Right, true
	}
	m.overrides[pos] = cur
}

// SetRowLine sets the override horizontal split line drawn above row r (r
// may range 0..=rows, where rows is the bottom-most line).
func (m *Model[T]) SetRowLine(r int, line Line[T]) {
	if r < 0 || r > m.rows {
		return
	}
	m.rowLines[r] = line
}

// SetColLine sets the override vertical split line drawn left of column c
// (c may range 0..=cols).
func (m *Model[T]) SetColLine(c int, line Line[T]) {
	if c < 0 || c > m.cols {
		return
	}
	m.colLines[c] = line
}

// HasHorizontal reports whether a horizontal split line is drawn above grid
// row r (0..=rows). A set row override line always makes it present;
// otherwise the global preset decides: row 0 and row rows follow the Top and
// Bottom glyphs being non-zero, and interior rows follow the Horizontal
// glyph being non-zero (only row 1 when HeaderOnly is set). Per-cell
// overrides are not consulted.
func (m *Model[T]) HasHorizontal(r int) bool {
	if line, ok := m.rowLines[r]; ok && line.set {
		return true
	}
	if r == 0 {
		return m.global.Top != m.zero
	}
	if r == m.rows {
		return m.global.Bottom != m.zero
	}
	if m.global.HeaderOnly {
		return r == 1
	}
	return m.global.Horizontal != m.zero
}

// HasVertical reports the same for a vertical split line left of grid
// column c (0..=cols).
func (m *Model[T]) HasVertical(c int) bool {
	if line, ok := m.colLines[c]; ok && line.set {
		return true
	}
	if c == 0 {
		return m.global.Left != m.zero
	}
	if c == m.cols {
		return m.global.Right != m.zero
	}
	return m.global.Vertical != m.zero
}

// GetHorizontal returns the horizontal glyph drawn above row r at column c
// (r in 0..=rows, c in 0..cols).
func (m *Model[T]) GetHorizontal(r, c int) (T, bool) {
	if r > 0 && r <= m.rows {
		if sides, ok := m.overrides[gw.Position{Row: r - 1, Col: c}]; ok {
			if v, has := sides.bottom(); has {
				return v, true
			}
		}
	}
	if r >= 0 && r < m.rows {
		if sides, ok := m.overrides[gw.Position{Row: r, Col: c}]; ok {
			if v, has := sides.top(); has {
				return v, true
			}
		}
	}
	if line, ok := m.rowLines[r]; ok && line.set {
		return line.Main, true
	}
	switch {
	case r == 0:
		return m.global.Top, m.global.Top != m.zero
	case r == m.rows:
		return m.global.Bottom, m.global.Bottom != m.zero
	default:
		return m.global.Horizontal, m.global.Horizontal != m.zero
	}
}

// GetVertical returns the vertical glyph drawn left of column c at row r (r
// in 0..rows, c in 0..=cols).
func (m *Model[T]) GetVertical(r, c int) (T, bool) {
	if c > 0 && c <= m.cols {
		if sides, ok := m.overrides[gw.Position{Row: r, Col: c - 1}]; ok {
			if v, has := sides.right(); has {
				return v, true
			}
		}
	}
	if c >= 0 && c < m.cols {
		if sides, ok := m.overrides[gw.Position{Row: r, Col: c}]; ok {
			if v, has := sides.left(); has {
				return v, true
			}
		}
	}
	if line, ok := m.colLines[c]; ok && line.set {
		return line.Main, true
	}
	switch {
	case c == 0:
		return m.global.Left, m.global.Left != m.zero
	case c == m.cols:
		return m.global.Right, m.global.Right != m.zero
	default:
		return m.global.Vertical, m.global.Vertical != m.zero
	}
}

// GetIntersection returns the glyph at the crossing of grid line r and
// grid line c (r in 0..=rows, c in 0..=cols): a corner at the four table
// corners, an edge T-junction along the boundary, the global Center cross
// in the interior, and the per-row/per-column override Intersection/
// Connector glyphs where those lines are overridden. A zero corner or
// junction is returned as is: no fill glyph is substituted, even where the
// adjacent sides are drawn.
func (m *Model[T]) GetIntersection(r, c int) T {
	rowLine, hasRowLine := m.rowLines[r]
	colLine, hasColLine := m.colLines[c]

	switch {
	case r == 0 && c == 0:
		if hasRowLine && rowLine.set {
			return rowLine.Connector1
		}
		if hasColLine && colLine.set {
			return colLine.Connector1
		}
		return m.global.TopLeft
	case r == 0 && c == m.cols:
		if hasRowLine && rowLine.set {
			return rowLine.Connector2
		}
		if hasColLine && colLine.set {
			return colLine.Connector1
		}
		return m.global.TopRight
	case r == m.rows && c == 0:
		if hasRowLine && rowLine.set {
			return rowLine.Connector1
		}
		if hasColLine && colLine.set {
			return colLine.Connector2
		}
		return m.global.BottomLeft
	case r == m.rows && c == m.cols:
		if hasRowLine && rowLine.set {
			return rowLine.Connector2
		}
		if hasColLine && colLine.set {
			return colLine.Connector2
		}
		return m.global.BottomRight
	case c == 0:
		if hasRowLine && rowLine.set {
			return rowLine.Intersection
		}
		if m.global.Left == m.zero {
			return m.zero
		}
		return m.global.MidLeft
	case c == m.cols:
		if hasRowLine && rowLine.set {
			return rowLine.Intersection
		}
		if m.global.Right == m.zero {
			return m.zero
		}
		return m.global.MidRight
	case r == 0 || r == m.rows:
		if hasColLine && colLine.set {
			return colLine.Intersection
		}
		return pickEdgeCenter(m, r)
	default:
		if hasRowLine && rowLine.set {
			return rowLine.Intersection
		}
		if hasColLine && colLine.set {
			return colLine.Intersection
		}
		return m.global.Center
	}
}

// pickEdgeCenter returns the top/bottom T-junction glyph for an interior
// column along the top or bottom edge (distinct from the corner and from the
// repeating edge glyph in box-drawing presets, e.g. "┬" vs "┌" vs "─").
func pickEdgeCenter[T comparable](m *Model[T], r int) T {
	if r == 0 {
		return m.global.TopMid
	}
	return m.global.BottomMid
}
