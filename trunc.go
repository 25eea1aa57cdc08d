package moneyinput

import (
	"strings"
	"unicode/utf8"
)

// TruncFrac returns number with its fractional part cut to at most maxDigits digits.
// The fractional part is whatever follows sep.
// Digits are discarded, not rounded, and a shorter fraction is not padded:
//
//	TruncFrac("14.333", 2, '.') = "14.33"
//	TruncFrac("19.2", 2, '.')   = "19.2"
//
// If sep does not occur in number exactly once, number is returned unchanged.
// A negative maxDigits is treated as zero.
func TruncFrac(number string, maxDigits int, sep rune) string {
	s := string(sep)
	if strings.Count(number, s) != 1 {
		return number
	}
	whole, frac, _ := strings.Cut(number, s)
	maxDigits = max(maxDigits, 0)
	if utf8.RuneCountInString(frac) <= maxDigits {
		return number
	}
	pos := 0
	for i := 0; i < maxDigits; i++ {
		_, n := utf8.DecodeRuneInString(frac[pos:])
		pos += n
	}
	return whole + s + frac[:pos]
}
