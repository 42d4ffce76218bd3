package gwtext

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func runeWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

func runeLen(r rune) int {
	return utf8.RuneLen(r)
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
