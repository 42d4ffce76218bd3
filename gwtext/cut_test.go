package gwtext

import "testing"

func TestSplitAtVisualASCII(t *testing.T) {
	length, pad, split := SplitAtVisual("hello", 3)
	checkEqual(t, length, 3)
	checkEqual(t, pad, 0)
	checkEqual(t, split, 0)
}

func TestSplitAtVisualWideBoundary(t *testing.T) {
	// "中" is width 2; cutting to width 1 must split it and report one
	// replacement character is needed to pad out to width 1.
	length, pad, split := SplitAtVisual("中x", 1)
	checkEqual(t, length, 0)
	checkEqual(t, pad, 1)
	checkEqual(t, split, 3)
}

func TestCutStringPlain(t *testing.T) {
	checkEqual(t, CutString("hello world", 5), "hello")
}

func TestCutStringASCIIPrefix(t *testing.T) {
	checkEqual(t, CutString("123456", 3), "123")
}

func TestCutStringWideRunePartialWidth(t *testing.T) {
	checkEqual(t, CutString("😳😳", 3), "😳"+string(ReplacementChar))
}

func TestCutStringWideReplacement(t *testing.T) {
	got := CutString("中文", 1)
	checkEqual(t, got, string(ReplacementChar))
}

func TestCutStringZeroWidth(t *testing.T) {
	checkEqual(t, CutString("abc", 0), "")
}

func TestCutStringPreservesANSIAndClosesStyle(t *testing.T) {
	s := "\x1b[31m123456\x1b[0m"
	got := CutString(s, 3)
	checkEqual(t, got, "\x1b[31m123\x1b[39m")
}

func TestCutStringNoOpenStyleNoSuffix(t *testing.T) {
	s := "\x1b[0m123456"
	got := CutString(s, 3)
	checkEqual(t, got, "\x1b[0m123")
}
