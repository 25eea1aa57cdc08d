package moneyinput

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// ErrUnparsable is wrapped by errors reporting text that is not a number.
var ErrUnparsable = errors.New("unparsable number")

// number is field text reduced to its digits, split at the decimal separator.
type number struct {
	whole string // ASCII digits without leading zeros, "0" for zero
	frac  string // ASCII digits as typed, possibly empty
	point bool   // decimal separator present
}

// strip removes every occurrence of the prefix and then every grouping separator.
// The prefix goes first, since it may contain the grouping separator.
func (c Config) strip(text string) string {
	if c.prefix != "" {
		text = strings.ReplaceAll(text, c.prefix, "")
	}
	return strings.ReplaceAll(text, string(c.Symbols().Group), "")
}

// split parses a stripped string consisting of ASCII digits and at most one
// decimal separator. An empty integer part reads as zero.
func (c Config) split(raw string) (number, error) {
	whole, frac, point := strings.Cut(raw, string(c.Symbols().Decimal))
	if !isDigits(whole) || !isDigits(frac) {
		return number{}, fmt.Errorf("%w: %q", ErrUnparsable, raw)
	}
	if whole == "" && !point {
		return number{}, fmt.Errorf("%w: no digits", ErrUnparsable)
	}
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}
	return number{whole: whole, frac: frac, point: point}, nil
}

// decimal converts n to a decimal.
// It fails if n has more digits than a decimal can hold exactly, since the
// decimal package rounds fractions that do not fit.
func (n number) decimal() (decimal.Decimal, error) {
	s := n.whole
	if n.frac != "" {
		s += "." + n.frac
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q: %w", ErrUnparsable, s, err)
	}
	if d.Scale() < len(n.frac) {
		return decimal.Decimal{}, fmt.Errorf("%w %q: too many digits", ErrUnparsable, s)
	}
	return d, nil
}

// Parse returns the numeric value of field text formatted with c.
// The prefix and grouping separators are ignored.
// Text without any digits, including the empty string and the bare prefix,
// has the value zero.
//
// Parse returns an error wrapping [ErrUnparsable] if the remaining text is
// not a number. Text produced by an [Engine] always parses.
func (c Config) Parse(text string) (decimal.Decimal, error) {
	if !strings.ContainsAny(text, "0123456789") {
		return decimal.Zero, nil
	}
	n, err := c.split(c.strip(text))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return n.decimal()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
