// Command gridcat reads CSV from a file or stdin and renders it as a
// formatted table.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/olekukonko/ts"
	"golang.org/x/term"

	"github.com/olekukonko/gridwriter"
	"github.com/olekukonko/gridwriter/gw"
	"github.com/olekukonko/gridwriter/gwconfig"
	"github.com/olekukonko/gridwriter/gwhtml"
	"github.com/olekukonko/gridwriter/gwstyle"
	"github.com/olekukonko/gridwriter/gwwrap"
)

var (
	fileName  = flag.String("f", "", "CSV file path. If empty, STDIN is used.")
	delimiter = flag.String("d", ",", `CSV delimiter (e.g. "," "|" "\t").`)
	header    = flag.Bool("h", true, "Treat the first row as a header.")
	align     = flag.String("a", "left", "Global cell alignment (left|right|center).")
	style     = flag.String("style", "ascii", "Border style (ascii|psql|markdown|modern|rounded|sharp|extended|dots|blank|empty|restructuredtext|asciirounded).")
	maxWidth  = flag.Int("maxwidth", 0, "Max table width in characters (0: 90% of terminal width, when a tty).")
	html      = flag.Bool("html", false, "Render as HTML instead of text.")
	debug     = flag.Bool("debug", false, "Enable debug logging.")

	logger = ll.Namespace("gridcat").Handler(lh.NewColorizedHandler(os.Stderr))
)

func main() {
	flag.Parse()
	if flag.NArg() > 0 {
		*fileName = flag.Arg(0)
	}

	var in io.Reader = os.Stdin
	if *fileName != "" {
		f, err := os.Open(*fileName)
		if err != nil {
			logger.Fatal("failed to open %q: %v", *fileName, err)
		}
		defer f.Close()
		in = f
	}

	if err := run(in, os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer) error {
	records, err := readCSV(in)
	if err != nil {
		return fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No data to display.")
		return nil
	}

	src := &gridwriter.SliceSource{Data: records, Header: *header}
	grid := gridwriter.New(src, gridwriter.WithLogger(logger), gridwriter.WithDebug(*debug))
	grid.SetBorders(parseStyle(*style))

	switch strings.ToLower(*align) {
	case "right":
		grid.SetAlign(gw.Global(), gwconfig.AlignRight)
	case "center":
		grid.SetAlign(gw.Global(), gwconfig.AlignCenter)
	default:
		grid.SetAlign(gw.Global(), gwconfig.AlignLeft)
	}

	if *html {
		return grid.RenderHTML(out, gwhtml.DefaultConfig())
	}

	if width := resolveMaxWidth(); width > 0 {
		logger.Info("enforcing max width: %d", width)
		grid.SetWidth(gridwriter.WidthPolicy{
			Target:    width,
			Mode:      gridwriter.WrapWrap,
			Priority:  gwwrap.PriorityMax,
			KeepWords: true,
			Multiline: true,
		})
	}
	return grid.Render(out)
}

func readCSV(in io.Reader) ([][]string, error) {
	r := csv.NewReader(in)
	if *delimiter != "" {
		d := *delimiter
		if d == `\t` {
			d = "\t"
		}
		r.Comma = []rune(d)[0]
	}
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func resolveMaxWidth() int {
	if *maxWidth > 0 {
		return *maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return int(float64(w) * 0.9)
	}
	if size, err := ts.GetSize(); err == nil && size.Col() > 0 {
		return int(float64(size.Col()) * 0.9)
	}
	return 0
}

func parseStyle(name string) gwstyle.Name {
	switch strings.ToLower(name) {
	case "psql":
		return gwstyle.PSQL
	case "markdown":
		return gwstyle.Markdown
	case "modern":
		return gwstyle.Modern
	case "rounded":
		return gwstyle.Rounded
	case "sharp":
		return gwstyle.Sharp
	case "extended":
		return gwstyle.Extended
	case "dots":
		return gwstyle.Dots
	case "blank":
		return gwstyle.Blank
	case "empty":
		return gwstyle.Empty
	case "restructuredtext":
		return gwstyle.ReStructuredText
	case "asciirounded":
		return gwstyle.ASCIIRounded
	default:
		return gwstyle.ASCII
	}
}
