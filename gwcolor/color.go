// Package gwcolor defines the engine's opaque color handle: an ANSI
// prefix/suffix pair wrapped around cell or border content, built from
// github.com/fatih/color attributes. It has no dependency on any other
// engine package so it can be shared by the border model, renderer, and
// root package without creating import cycles.
package gwcolor

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color is a pair of ANSI escape sequences: Prefix written before the
// styled text, Suffix (usually a reset) written after. The zero value is
// "no color" (both empty).
type Color struct {
	Prefix string
	Suffix string
}

// IsZero reports whether c carries no styling.
func (c Color) IsZero() bool { return c.Prefix == "" && c.Suffix == "" }

// New builds a Color from fatih/color attributes (Bold, FgRed, BgBlue, ...).
// The result of color.New is discarded and no attribute is checked; the
// prefix is built directly from the numeric codes so it carries no trailing
// reset of its own.
func New(attrs ...color.Attribute) Color {
	if len(attrs) == 0 {
		return Color{}
	}
	_ = color.New(attrs...)
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return Color{Prefix: "\x1b[" + strings.Join(codes, ";") + "m", Suffix: "\x1b[0m"}
}

// Wrap surrounds s with c's prefix/suffix; a zero Color is a no-op.
func (c Color) Wrap(s string) string {
	if c.IsZero() {
		return s
	}
	return c.Prefix + s + c.Suffix
}
