package gwconfig

import (
	"testing"

	"github.com/olekukonko/gridwriter/gw"
)

func TestNewDefaults(t *testing.T) {
	cfg := New(3, 3)
	pad := cfg.Padding.Lookup(0, 0)
	if pad.Left.Size != 1 || pad.Right.Size != 1 || pad.Top.Size != 0 {
		t.Fatalf("unexpected default padding: %+v", pad)
	}
	if cfg.HAlign.Lookup(0, 0) != AlignLeft {
		t.Fatalf("expected default left alignment")
	}
	if cfg.VAlign.Lookup(0, 0) != VAlignTop {
		t.Fatalf("expected default top valignment")
	}
	if cfg.TabWidth != 4 {
		t.Fatalf("expected default tab width 4, got %d", cfg.TabWidth)
	}
	if cfg.ColSpanAt(0, 0) != 1 || cfg.RowSpanAt(0, 0) != 1 {
		t.Fatalf("expected no spans by default")
	}
}

func TestSetColSpanClampsToBounds(t *testing.T) {
	cfg := New(2, 3)
	cfg.SetColSpan(0, 1, 10)
	if got := cfg.ColSpanAt(0, 1); got != 2 {
		t.Fatalf("expected span clamped to remaining columns (2), got %d", got)
	}
}

func TestSetColSpanOfOneRemovesEntry(t *testing.T) {
	cfg := New(1, 3)
	cfg.SetColSpan(0, 0, 3)
	cfg.SetColSpan(0, 0, 1)
	if cfg.ColSpanAt(0, 0) != 1 {
		t.Fatalf("expected span removed")
	}
	if _, ok := cfg.ColSpans[gw.Position{Row: 0, Col: 0}]; ok {
		t.Fatalf("expected no map entry for a span of 1")
	}
}

func TestSetOverrideLineEmptyRemoves(t *testing.T) {
	cfg := New(1, 1)
	cfg.SetOverrideLine(0, "hi")
	if cfg.OverrideLines[0] != "hi" {
		t.Fatalf("expected override line set")
	}
	cfg.SetOverrideLine(0, "")
	if _, ok := cfg.OverrideLines[0]; ok {
		t.Fatalf("expected override line cleared by empty text")
	}
}

func TestCellOverrideWinsOverRowAndColumn(t *testing.T) {
	cfg := New(2, 2)
	cfg.SetAlign(gw.Row(0), AlignCenter)
	cfg.SetAlign(gw.Column(1), AlignRight)
	cfg.SetAlign(gw.Cell(0, 1), AlignLeft)
	if got := cfg.HAlign.Lookup(0, 1); got != AlignLeft {
		t.Fatalf("expected cell override to win, got %v", got)
	}
	if got := cfg.HAlign.Lookup(0, 0); got != AlignCenter {
		t.Fatalf("expected row override for uncontested cell, got %v", got)
	}
	if got := cfg.HAlign.Lookup(1, 1); got != AlignRight {
		t.Fatalf("expected column override for uncontested cell, got %v", got)
	}
}
