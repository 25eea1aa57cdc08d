package moneyinput

import (
	"strings"
	"unicode/utf8"
)

// group inserts sep between every three digits, counting from the right.
func group(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3*utf8.RuneLen(sep))
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteRune(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// render returns the canonical text of n: the prefix, the grouped integer part
// and, if n has a decimal point, the separator and the fraction exactly as typed.
func (c Config) render(n number) string {
	syms := c.Symbols()
	var b strings.Builder
	b.WriteString(c.prefix)
	b.WriteString(group(n.whole, syms.Group))
	if n.point {
		b.WriteRune(syms.Decimal)
		b.WriteString(n.frac)
	}
	return b.String()
}

// normalize turns stripped field text into a number: a lone decimal separator
// reads as zero, the fraction is truncated to [Config.MaxFrac] digits, and the
// result must fit a decimal.
func (c Config) normalize(raw string) (number, error) {
	syms := c.Symbols()
	if raw == string(syms.Decimal) {
		raw = "0" + raw
	}
	n, err := c.split(TruncFrac(raw, c.MaxFrac(), syms.Decimal))
	if err != nil {
		return number{}, err
	}
	if _, err := n.decimal(); err != nil {
		return number{}, err
	}
	return n, nil
}

// Format returns the canonical text of a digit string such as "1320.5",
// written with the decimal separator of c and without prefix or grouping.
// The fraction is truncated to [Config.MaxFrac] digits.
// If s is not such a string, Format returns an error wrapping [ErrUnparsable].
func (c Config) Format(s string) (string, error) {
	n, err := c.normalize(s)
	if err != nil {
		return "", err
	}
	return c.render(n), nil
}
