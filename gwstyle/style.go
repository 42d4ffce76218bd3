// Package gwstyle provides named border presets and the translator from a
// preset name to a concrete gwborder.Frame glyph set.
package gwstyle

import "github.com/olekukonko/gridwriter/gwborder"

// Name identifies a named preset.
type Name int

const (
	ASCII Name = iota
	PSQL
	Markdown
	Modern
	Rounded
	Sharp
	Extended
	Dots
	Blank
	Empty
	ReStructuredText
	ASCIIRounded
)

// Frame returns the gwborder.Frame[string] glyph set for a named preset.
func Frame(name Name) gwborder.Frame[string] {
	switch name {
	case PSQL:
		return gwborder.Frame[string]{
			Top: "", Bottom: "", Left: "", Right: "",
			Horizontal: "-", Vertical: "|",
			TopLeft: "", TopRight: "", BottomLeft: "", BottomRight: "",
			MidLeft: "+", Center: "+", MidRight: "+",
			TopMid: "", BottomMid: "",
			HeaderOnly: true,
		}
	case Markdown:
		return gwborder.Frame[string]{
			Top: "", Bottom: "", Left: "|", Right: "|",
			Horizontal: "-", Vertical: "|",
			TopLeft: "", TopRight: "", BottomLeft: "", BottomRight: "",
			MidLeft: "|", Center: "|", MidRight: "|",
			TopMid: "", BottomMid: "",
			HeaderOnly: true,
		}
	case Modern, Sharp:
		return gwborder.Frame[string]{
			Top: "─", Bottom: "─", Left: "│", Right: "│",
			Horizontal: "─", Vertical: "│",
			TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
			MidLeft: "├", Center: "┼", MidRight: "┤",
			TopMid: "┬", BottomMid: "┴",
		}
	case Extended:
		return gwborder.Frame[string]{
			Top: "═", Bottom: "═", Left: "║", Right: "║",
			Horizontal: "═", Vertical: "║",
			TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
			MidLeft: "╠", Center: "╬", MidRight: "╣",
			TopMid: "╦", BottomMid: "╩",
		}
	case Rounded:
		return gwborder.Frame[string]{
			Top: "─", Bottom: "─", Left: "│", Right: "│",
			Horizontal: "─", Vertical: "│",
			TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
			MidLeft: "├", Center: "┼", MidRight: "┤",
			TopMid: "┬", BottomMid: "┴",
		}
	case ASCIIRounded:
		return gwborder.Frame[string]{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			Horizontal: "-", Vertical: "|",
			TopLeft: ".", TopRight: ".", BottomLeft: "'", BottomRight: "'",
			MidLeft: ":", Center: "+", MidRight: ":",
			TopMid: ".", BottomMid: "'",
		}
	case Dots:
		return gwborder.Frame[string]{
			Top: "·", Bottom: "·", Left: "·", Right: "·",
			Horizontal: "·", Vertical: "·",
			TopLeft: "·", TopRight: "·", BottomLeft: "·", BottomRight: "·",
			MidLeft: "·", Center: "·", MidRight: "·",
			TopMid: "·", BottomMid: "·",
		}
	case Blank, Empty:
		return gwborder.Frame[string]{}
	case ReStructuredText:
		return gwborder.Frame[string]{
			Top: "=", Bottom: "=", Left: "", Right: "",
			Horizontal: "=", Vertical: " ",
			TopLeft: "", TopRight: "", BottomLeft: "", BottomRight: "",
			MidLeft: "", Center: " ", MidRight: "",
			TopMid: "", BottomMid: "",
		}
	default: // ASCII
		return gwborder.Frame[string]{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			Horizontal: "-", Vertical: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
			MidLeft: "+", Center: "+", MidRight: "+",
			TopMid: "+", BottomMid: "+",
		}
	}
}

// WithoutOuter returns a copy of f with its four boundary edges and corners
// cleared, used by builders that want the interior grid lines only.
func WithoutOuter(f gwborder.Frame[string]) gwborder.Frame[string] {
	f.Top, f.Bottom, f.Left, f.Right = "", "", "", ""
	f.TopLeft, f.TopRight, f.BottomLeft, f.BottomRight = "", "", "", ""
	return f
}

// WithoutLines returns a copy of f with its interior horizontal/vertical
// lines and intersections cleared, keeping only the outer frame.
func WithoutLines(f gwborder.Frame[string]) gwborder.Frame[string] {
	f.Horizontal, f.Vertical = "", ""
	f.MidLeft, f.Center, f.MidRight = "", "", ""
	f.TopMid, f.BottomMid = "", ""
	return f
}
