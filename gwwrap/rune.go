package gwwrap

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func decodeRuneAt(s string, i int) (rune, int) {
	return utf8.DecodeRuneInString(s[i:])
}

func runeVisualWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}
