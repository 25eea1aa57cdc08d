package moneyinput

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// ErrInvalidConfig is wrapped by all errors reporting an unusable [Config].
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultMaxFrac is the number of fraction digits allowed when none is configured.
const DefaultMaxFrac = 2

// Config type represents the formatting configuration of a field.
// The zero value has no prefix, uses [DefaultSymbols] and allows
// [DefaultMaxFrac] fraction digits.
// Config is immutable and safe for concurrent use by multiple goroutines.
type Config struct {
	prefix  string  // currency symbol followed by a space, or empty
	syms    Symbols // zero means DefaultSymbols
	maxFrac int     // zero means DefaultMaxFrac
}

// NewConfig returns a configuration with the given prefix, separators and
// maximum number of fraction digits.
// The prefix is used verbatim; see [PrefixOf] to build one from a currency symbol.
//
// NewConfig returns an error wrapping [ErrInvalidConfig] if:
//   - maxFrac is less than 1 or greater than [decimal.MaxScale];
//   - the separators are unset, equal, or digits.
func NewConfig(prefix string, syms Symbols, maxFrac int) (Config, error) {
	if maxFrac < 1 {
		return Config{}, fmt.Errorf("%w: maximum number of decimal digits must be at least 1, got %v", ErrInvalidConfig, maxFrac)
	}
	if maxFrac > decimal.MaxScale {
		return Config{}, fmt.Errorf("%w: maximum number of decimal digits must be at most %v, got %v", ErrInvalidConfig, decimal.MaxScale, maxFrac)
	}
	if err := syms.validate(); err != nil {
		return Config{}, err
	}
	return Config{prefix: prefix, syms: syms, maxFrac: maxFrac}, nil
}

// MustNewConfig is like [NewConfig] but panics if the configuration is invalid.
// It simplifies safe initialization of global variables holding configurations.
func MustNewConfig(prefix string, syms Symbols, maxFrac int) Config {
	c, err := NewConfig(prefix, syms, maxFrac)
	if err != nil {
		panic(fmt.Sprintf("NewConfig(%q, %v, %v) failed: %v", prefix, syms, maxFrac, err))
	}
	return c
}

// PrefixOf returns the prefix displayed for a currency symbol:
// the symbol followed by a space, or "" if the symbol is blank.
func PrefixOf(symbol string) string {
	if strings.TrimSpace(symbol) == "" {
		return ""
	}
	return symbol + " "
}

// Prefix returns the text that precedes every formatted number.
func (c Config) Prefix() string {
	return c.prefix
}

// Symbols returns the decimal and grouping separators.
func (c Config) Symbols() Symbols {
	if c.syms == (Symbols{}) {
		return DefaultSymbols
	}
	return c.syms
}

// MaxFrac returns the maximum number of fraction digits.
func (c Config) MaxFrac() int {
	if c.maxFrac == 0 {
		return DefaultMaxFrac
	}
	return c.maxFrac
}

// WithPrefix returns a copy of c with the prefix replaced.
func (c Config) WithPrefix(prefix string) Config {
	c.prefix = prefix
	return c
}

// WithSymbols returns a copy of c with the separators replaced.
// See [NewConfig] for the errors it returns.
func (c Config) WithSymbols(syms Symbols) (Config, error) {
	return NewConfig(c.prefix, syms, c.MaxFrac())
}

// WithMaxFrac returns a copy of c with the maximum number of fraction digits replaced.
// See [NewConfig] for the errors it returns.
func (c Config) WithMaxFrac(maxFrac int) (Config, error) {
	return NewConfig(c.prefix, c.Symbols(), maxFrac)
}

// AcceptedChars returns the characters a keyboard attached to the field may produce:
// the ASCII digits and the decimal separator.
func (c Config) AcceptedChars() string {
	return "0123456789" + string(c.Symbols().Decimal)
}

// Accepts reports whether r is one of [Config.AcceptedChars].
func (c Config) Accepts(r rune) bool {
	return ('0' <= r && r <= '9') || r == c.Symbols().Decimal
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Config) String() string {
	return fmt.Sprintf("prefix %q, separators %v, %v decimal digit(s)", c.prefix, c.Symbols(), c.MaxFrac())
}

// prefixLen returns the length of the prefix in runes.
func (c Config) prefixLen() int {
	return utf8.RuneCountInString(c.prefix)
}

// Options represents the recognized settings of a currency field, as found
// in host configuration files.
// Use [DefaultOptions] as the starting point before decoding, so that
// absent settings keep their defaults.
type Options struct {
	CurrencySymbol          string `json:"currencySymbol" yaml:"currencySymbol" mapstructure:"currencySymbol"`
	UseCurrencySymbolAsHint bool   `json:"useCurrencySymbolAsHint" yaml:"useCurrencySymbolAsHint" mapstructure:"useCurrencySymbolAsHint"`
	LocaleTag               string `json:"localeTag" yaml:"localeTag" mapstructure:"localeTag"` // empty means the system locale
	MaxDecimalDigits        int    `json:"maxNumberOfDecimalDigits" yaml:"maxNumberOfDecimalDigits" mapstructure:"maxNumberOfDecimalDigits"`
}

// DefaultOptions returns the settings of a field nobody configured:
// no currency symbol, no hint, the system locale and two fraction digits.
func DefaultOptions() Options {
	return Options{MaxDecimalDigits: DefaultMaxFrac}
}

// Config resolves the options into a formatting configuration.
// The locale tag is resolved with r, falling back to the system locale;
// a nil r means [CLDR]. See [ResolveSymbols].
//
// Config returns an error wrapping [ErrInvalidConfig] if MaxDecimalDigits is less than 1
// or greater than [decimal.MaxScale].
func (o Options) Config(r LocaleResolver) (Config, error) {
	c, err := NewConfig(PrefixOf(o.CurrencySymbol), ResolveSymbols(r, o.LocaleTag), o.MaxDecimalDigits)
	if err != nil {
		return Config{}, fmt.Errorf("resolving options: %w", err)
	}
	return c, nil
}

// Hint returns the placeholder a host shows in an empty field:
// the prefix if UseCurrencySymbolAsHint is set, otherwise "".
func (o Options) Hint() string {
	if !o.UseCurrencySymbolAsHint {
		return ""
	}
	return PrefixOf(o.CurrencySymbol)
}
