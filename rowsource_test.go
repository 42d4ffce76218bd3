package gridwriter

import "testing"

func TestSliceSourceCountsRaggedRows(t *testing.T) {
	s := NewSliceSource([][]string{
		{"a", "b", "c"},
		{"d"},
	})
	if got := s.CountRows(); got != 2 {
		t.Fatalf("CountRows: got %d, want 2", got)
	}
	if got := s.CountColumns(); got != 3 {
		t.Fatalf("CountColumns: got %d, want 3 (widest row)", got)
	}
}

func TestSliceSourceGetTextOutOfBounds(t *testing.T) {
	s := NewSliceSource([][]string{{"a"}})
	if got := s.GetText(5, 5); got != "" {
		t.Fatalf("expected empty string out of bounds, got %q", got)
	}
	if got := s.GetText(-1, 0); got != "" {
		t.Fatalf("expected empty string for negative row, got %q", got)
	}
	if got := s.GetText(0, 5); got != "" {
		t.Fatalf("expected empty string for short row, got %q", got)
	}
}

func TestSliceSourceHasHeader(t *testing.T) {
	s := &SliceSource{Data: [][]string{{"a"}}, Header: true}
	if !s.HasHeader() {
		t.Fatalf("expected HasHeader true")
	}
	if NewSliceSource(nil).HasHeader() {
		t.Fatalf("expected HasHeader false by default")
	}
}
