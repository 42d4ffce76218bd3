package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/gridwriter/gwstyle"
)

func TestRunRendersCSV(t *testing.T) {
	in := strings.NewReader("name,age\nalice,30\nbob,25\n")
	var out bytes.Buffer
	if err := run(in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "alice") || !strings.Contains(got, "bob") {
		t.Fatalf("expected CSV rows rendered, got: %s", got)
	}
	if !strings.Contains(got, "+") {
		t.Fatalf("expected ASCII border glyphs by default, got: %s", got)
	}
}

func TestRunEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := run(strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No data") {
		t.Fatalf("expected the empty-input message, got: %q", out.String())
	}
}

func TestParseStyleKnownAndFallback(t *testing.T) {
	if got := parseStyle("modern"); got != gwstyle.Modern {
		t.Fatalf("expected Modern style constant, got %v", got)
	}
	if got := parseStyle("not-a-style"); got != gwstyle.ASCII {
		t.Fatalf("expected ASCII fallback for unknown style name, got %v", got)
	}
}
