package moneyinput

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xnumber "golang.org/x/text/number"
)

// ErrMalformedLocaleTag is returned by a [LocaleResolver] for tags that are not valid BCP 47.
var ErrMalformedLocaleTag = errors.New("malformed locale tag")

// Symbols holds the locale-specific characters used to write a number.
// The zero value is not valid; use [DefaultSymbols] instead.
type Symbols struct {
	Decimal rune // separates integer and fractional parts, e.g. '.' in "1.50"
	Group   rune // inserted every three integer digits, e.g. ',' in "1,000"
}

// DefaultSymbols are the separators of en-US.
var DefaultSymbols = Symbols{Decimal: '.', Group: ','}

// String returns the separators quoted, decimal first.
func (s Symbols) String() string {
	return fmt.Sprintf("%q %q", s.Decimal, s.Group)
}

// validate reports whether the separators can be told apart from each other and from digits.
func (s Symbols) validate() error {
	switch {
	case s.Decimal == 0 || s.Group == 0:
		return fmt.Errorf("%w: separators %v must be set", ErrInvalidConfig, s)
	case s.Decimal == s.Group:
		return fmt.Errorf("%w: separators %v must be distinct", ErrInvalidConfig, s)
	case unicode.IsDigit(s.Decimal) || unicode.IsDigit(s.Group):
		return fmt.Errorf("%w: separators %v must not be digits", ErrInvalidConfig, s)
	}
	return nil
}

// LocaleResolver maps a BCP 47 language tag to its number separators.
// Implementations return an error wrapping [ErrMalformedLocaleTag] for tags they cannot parse.
type LocaleResolver interface {
	ResolveLocale(tag string) (Symbols, error)
}

// LocaleResolverFunc is an adapter to allow the use of ordinary functions as a [LocaleResolver].
type LocaleResolverFunc func(tag string) (Symbols, error)

// ResolveLocale calls f(tag).
func (f LocaleResolverFunc) ResolveLocale(tag string) (Symbols, error) {
	return f(tag)
}

// CLDR resolves separators from the Unicode CLDR data shipped with golang.org/x/text.
var CLDR LocaleResolver = cldrResolver{}

type cldrResolver struct{}

// probe has two groups, since some locales do not group four-digit numbers.
const probe = 1234567.5

func (cldrResolver) ResolveLocale(tag string) (Symbols, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return Symbols{}, fmt.Errorf("%w %q: %w", ErrMalformedLocaleTag, tag, err)
	}
	return symbolsOf(t), nil
}

// symbolsOf prints a probe number for tag and reads the separators off the result.
// The first non-digit is the grouping separator and the last one is the decimal separator.
func symbolsOf(tag language.Tag) Symbols {
	var seps []rune
	for _, r := range message.NewPrinter(tag).Sprint(xnumber.Decimal(probe, xnumber.Scale(1))) {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	var s Symbols
	switch len(seps) {
	case 0:
		return DefaultSymbols
	case 1:
		s.Decimal = seps[0]
		s.Group = ','
		if s.Decimal == ',' {
			s.Group = '.'
		}
	default:
		s.Decimal = seps[len(seps)-1]
		s.Group = seps[0]
	}
	if s.validate() != nil {
		return DefaultSymbols
	}
	return s
}

// SystemLocale returns the locale of the process environment.
// It consults LC_ALL, LC_NUMERIC and LANG in that order and accepts both
// BCP 47 ("de-DE") and POSIX ("de_DE.UTF-8") forms.
// If none of them holds a usable tag, SystemLocale returns en-US.
func SystemLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		t, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err == nil {
			return t
		}
	}
	return language.AmericanEnglish
}

// ResolveSymbols returns the separators for tag as reported by r.
// A blank tag means the [SystemLocale].
// If r fails, or returns unusable separators, ResolveSymbols falls back to
// the system locale and then to [DefaultSymbols]; it never fails.
// A nil r means [CLDR].
func ResolveSymbols(r LocaleResolver, tag string) Symbols {
	if r == nil {
		r = CLDR
	}
	if tag = strings.TrimSpace(tag); tag != "" {
		if s, err := r.ResolveLocale(tag); err == nil && s.validate() == nil {
			return s
		}
	}
	if s, err := r.ResolveLocale(SystemLocale().String()); err == nil && s.validate() == nil {
		return s
	}
	return DefaultSymbols
}
