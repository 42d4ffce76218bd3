// Package gwhtml exports the same logical table the core renders to
// terminal text as a nested HTML tag tree.
package gwhtml

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/olekukonko/errors"
	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwcontent"
)

// Config controls CSS classes and content handling.
type Config struct {
	EscapeContent bool
	TableClass    string
	HeaderClass   string
	BodyClass     string
	FooterClass   string
	RowClass      string
}

// DefaultConfig returns a Config with content escaping on and no CSS
// classes set.
func DefaultConfig() Config {
	return Config{EscapeContent: true}
}

// Section identifies which part of the table a row belongs to.
type Section int

const (
	SectionHeader Section = iota
	SectionBody
	SectionFooter
)

// Exporter renders a table as HTML to an io.Writer.
type Exporter struct {
	w      io.Writer
	cfg    Config
	config *gwconfig.Config
}

// NewExporter builds an Exporter bound to cfg/config. Panics if w is nil.
func NewExporter(w io.Writer, config *gwconfig.Config, cfg Config) *Exporter {
	if w == nil {
		panic("gwhtml: NewExporter requires a non-nil writer")
	}
	return &Exporter{w: w, cfg: cfg, config: config}
}

// Row is one row of already-resolved cell text, keyed by column.
type Row struct {
	RowIndex int
	Cells    map[int]gwcontent.Cell
	Raw      map[int]string
}

// Export writes a complete <table> for header+body+footer rows. Any of the
// slices may be empty; an empty result omits that section entirely.
func (e *Exporter) Export(header, body, footer []Row) error {
	if e.w == nil {
		return errors.New("gwhtml: Export called with nil writer")
	}
	if err := e.writeString(openTag("table", e.cfg.TableClass)); err != nil {
		return err
	}
	if len(header) > 0 {
		if err := e.section("thead", e.cfg.HeaderClass, SectionHeader, header); err != nil {
			return err
		}
	}
	if len(body) > 0 {
		if err := e.section("tbody", e.cfg.BodyClass, SectionBody, body); err != nil {
			return err
		}
	}
	if len(footer) > 0 {
		if err := e.section("tfoot", e.cfg.FooterClass, SectionFooter, footer); err != nil {
			return err
		}
	}
	return e.writeString("</table>\n")
}

func (e *Exporter) section(tag, class string, sec Section, rows []Row) error {
	if err := e.writeString(openTag(tag, class)); err != nil {
		return err
	}
	vMergeTrack := make(map[int]int)
	for _, row := range rows {
		if err := e.renderRow(sec, row, vMergeTrack); err != nil {
			return err
		}
	}
	return e.writeString("</" + tag + ">\n")
}

func (e *Exporter) renderRow(sec Section, row Row, vMergeTrack map[int]int) error {
	if err := e.writeString(openTag("tr", e.cfg.RowClass)); err != nil {
		return err
	}
	cols := maxCol(row)
	for c := 0; c < cols; c++ {
		if remaining, ok := vMergeTrack[c]; ok && remaining > 0 {
			vMergeTrack[c] = remaining - 1
			continue
		}
		rowSpan := e.config.RowSpanAt(row.RowIndex, c)
		colSpan := e.config.ColSpanAt(row.RowIndex, c)
		if e.config.ColSpans != nil {
			if _, overridden := isOverriddenColumn(e.config, row.RowIndex, c); overridden {
				continue
			}
		}
		if rowSpan > 1 {
			vMergeTrack[c] = rowSpan - 1
		}

		tagName := "td"
		if sec == SectionHeader {
			tagName = "th"
		}
		content := row.Raw[c]
		attrs := e.attrs(row.RowIndex, c, colSpan, rowSpan)
		if err := e.writeString(fmt.Sprintf("<%s%s>%s</%s>", tagName, attrs, e.escape(content), tagName)); err != nil {
			return err
		}
	}
	return e.writeString("</tr>\n")
}

func isOverriddenColumn(cfg *gwconfig.Config, r, c int) (gw.Position, bool) {
	for pos, span := range cfg.ColSpans {
		if pos.Row == r && c > pos.Col && c < pos.Col+span {
			return pos, true
		}
	}
	return gw.Position{}, false
}

func (e *Exporter) attrs(r, c, colSpan, rowSpan int) string {
	var b strings.Builder
	if colSpan > 1 {
		fmt.Fprintf(&b, ` colspan="%d"`, colSpan)
	}
	if rowSpan > 1 {
		fmt.Fprintf(&b, ` rowspan="%d"`, rowSpan)
	}
	style := e.style(r, c)
	if style != "" {
		fmt.Fprintf(&b, ` style="%s"`, style)
	}
	return b.String()
}

func (e *Exporter) style(r, c int) string {
	var decls []string
	switch e.config.HAlign.Lookup(r, c) {
	case gwconfig.AlignRight:
		decls = append(decls, "text-align: right")
	case gwconfig.AlignCenter:
		decls = append(decls, "text-align: center")
	}
	switch e.config.VAlign.Lookup(r, c) {
	case gwconfig.VAlignBottom:
		decls = append(decls, "vertical-align: bottom")
	case gwconfig.VAlignCenter:
		decls = append(decls, "vertical-align: middle")
	}
	pad := e.config.Padding.Lookup(r, c)
	if pad.Left.Size > 0 || pad.Right.Size > 0 || pad.Top.Size > 0 || pad.Bottom.Size > 0 {
		decls = append(decls, fmt.Sprintf("padding: %dem %dem %dem %dem",
			pad.Top.Size, pad.Right.Size, pad.Bottom.Size, pad.Left.Size))
	}
	return strings.Join(decls, "; ")
}

func (e *Exporter) escape(s string) string {
	if !e.cfg.EscapeContent {
		return s
	}
	escaped := html.EscapeString(s)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func (e *Exporter) writeString(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

func openTag(tag, class string) string {
	if class == "" {
		return "<" + tag + ">\n"
	}
	return fmt.Sprintf("<%s class=%q>\n", tag, class)
}

func maxCol(row Row) int {
	max := 0
	for c := range row.Raw {
		if c+1 > max {
			max = c + 1
		}
	}
	return max
}
