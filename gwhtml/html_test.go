package gwhtml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/gridwriter/gwconfig"
)

func TestExportBasicTable(t *testing.T) {
	cfg := gwconfig.New(2, 2)
	var buf bytes.Buffer
	exp := NewExporter(&buf, cfg, DefaultConfig())

	header := []Row{{RowIndex: 0, Raw: map[int]string{0: "Name", 1: "Age"}}}
	body := []Row{{RowIndex: 1, Raw: map[int]string{0: "Alice", 1: "30"}}}

	if err := exp.Export(header, body, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<table>", "<thead>", "<th>Name</th>", "<tbody>", "<td>Alice</td>", "</table>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportEscapesContent(t *testing.T) {
	cfg := gwconfig.New(1, 1)
	var buf bytes.Buffer
	exp := NewExporter(&buf, cfg, DefaultConfig())
	body := []Row{{RowIndex: 0, Raw: map[int]string{0: "<script>"}}}
	if err := exp.Export(nil, body, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("content should be escaped: %s", buf.String())
	}
}

func TestExportColSpan(t *testing.T) {
	cfg := gwconfig.New(1, 2)
	cfg.SetColSpan(0, 0, 2)
	var buf bytes.Buffer
	exp := NewExporter(&buf, cfg, DefaultConfig())
	body := []Row{{RowIndex: 0, Raw: map[int]string{0: "wide", 1: "wide"}}}
	if err := exp.Export(nil, body, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), `colspan="2"`) {
		t.Fatalf("expected colspan attribute: %s", buf.String())
	}
}
