package gwwrap

import (
	"reflect"
	"testing"
)

func TestTruncateColumns(t *testing.T) {
	widths := []int{10, 10, 10}
	mins := []int{2, 2, 2}
	got := Truncate(append([]int(nil), widths...), mins, 20, PriorityNone)
	if sum(got) != 20 {
		t.Fatalf("widths sum = %d, want 20: %v", sum(got), got)
	}
}

func TestTruncateRespectsMinimums(t *testing.T) {
	widths := []int{3, 3, 3}
	mins := []int{3, 3, 3}
	got := Truncate(append([]int(nil), widths...), mins, 1, PriorityNone)
	if !reflect.DeepEqual(got, []int{3, 3, 3}) {
		t.Fatalf("should not shrink below minimums, got %v", got)
	}
}

func TestMinWidthGrowsToTarget(t *testing.T) {
	widths := []int{2, 2}
	got := MinWidth(append([]int(nil), widths...), 10, PriorityLeft)
	if sum(got) != 10 {
		t.Fatalf("widths sum = %d, want 10: %v", sum(got), got)
	}
	if got[0] <= widths[0] {
		t.Fatalf("PriorityLeft should grow the leftmost column first, got %v", got)
	}
}

func TestTruncateTextAppendsSuffix(t *testing.T) {
	got := TruncateText([]string{"hello world"}, 8, "...", SuffixIgnore, '.', false)
	if got[0] != "hello..." {
		t.Fatalf("got %q", got[0])
	}
}

func TestTruncateTextSuffixIgnoreWhenTooNarrow(t *testing.T) {
	got := TruncateText([]string{"hello world"}, 2, "...", SuffixIgnore, '.', false)
	if got[0] != "he" {
		t.Fatalf("got %q", got[0])
	}
}

func TestWrapLinesHard(t *testing.T) {
	got := WrapLines([]string{"abcdefgh"}, 3, false)
	want := []string{"abc", "def", "gh "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapLinesKeepWords(t *testing.T) {
	got := WrapLines([]string{"the quick fox"}, 5, true)
	want := []string{"the  ", "quick", "fox  "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapLinesHardExactWideRunes(t *testing.T) {
	got := WrapLines([]string{"😳😳😳😳😳"}, 2, false)
	want := []string{"😳", "😳", "😳", "😳", "😳"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapLinesHardDropsOverflowingWideRune(t *testing.T) {
	got := WrapLines([]string{"😳😳"}, 3, false)
	want := []string{"😳�"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapLinesHardFiveWideRunesAtWidthThree(t *testing.T) {
	got := WrapLines([]string{"😳😳😳😳😳"}, 3, false)
	want := []string{"😳�", "😳�", "😳 "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestWrapLinesKeepWordsHardSplitsLongWord(t *testing.T) {
	got := WrapLines([]string{"abcdefgh"}, 3, true)
	want := []string{"abc", "def", "gh "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTrimLinesVertical(t *testing.T) {
	got := TrimLines([]string{"", "a", "b", ""}, TrimVertical)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
}

func TestTrimLinesHorizontal(t *testing.T) {
	got := TrimLines([]string{"  a  "}, TrimHorizontal)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("got %v", got)
	}
}
