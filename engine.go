package moneyinput

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

// State represents the phase of editing a field is in.
type State int

const (
	Empty           State = iota // no text, or the prefix only
	EditingInteger               // digits without a decimal separator
	EditingFraction              // a decimal separator is present
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case EditingInteger:
		return "EDITING_INTEGER"
	case EditingFraction:
		return "EDITING_FRACTION"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Edit is the outcome of a text change: the text a host must display and the
// cursor position (in runes) it must set.
type Edit struct {
	Text   string
	Cursor int
}

// Engine type represents the formatting state of a single field.
// Hosts report every change of the field text to [Engine.TextChanged]
// and apply the returned [Edit].
//
// An Engine is not safe for concurrent use and must not be shared between fields.
type Engine struct {
	cfg      Config
	hasPoint bool   // last contains the decimal separator
	last     string // last text accepted or produced, restored on rejected edits
}

// NewEngine returns an engine for an empty field formatted with cfg.
func NewEngine(cfg Config) *Engine {
	e := &Engine{}
	e.Reconfigure(cfg)
	return e
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reconfigure replaces the configuration and resets the edit state, as if the
// field were empty.
// The text currently displayed by the host is not reformatted; hosts that want
// that must report it again through [Engine.TextChanged].
func (e *Engine) Reconfigure(cfg Config) {
	e.cfg = cfg
	e.hasPoint = false
	e.last = cfg.Prefix()
}

// SetSymbols is like [Engine.Reconfigure] with only the separators replaced.
// See [NewConfig] for the errors it returns; on error the engine is left unchanged.
func (e *Engine) SetSymbols(syms Symbols) error {
	c, err := e.cfg.WithSymbols(syms)
	if err != nil {
		return err
	}
	e.Reconfigure(c)
	return nil
}

// SetCurrencySymbol is like [Engine.Reconfigure] with only the prefix replaced
// by the one of symbol. See [PrefixOf].
func (e *Engine) SetCurrencySymbol(symbol string) {
	e.Reconfigure(e.cfg.WithPrefix(PrefixOf(symbol)))
}

// SetMaxDecimalDigits is like [Engine.Reconfigure] with only the maximum
// number of fraction digits replaced.
// See [NewConfig] for the errors it returns; on error the engine is left unchanged.
func (e *Engine) SetMaxDecimalDigits(maxFrac int) error {
	c, err := e.cfg.WithMaxFrac(maxFrac)
	if err != nil {
		return err
	}
	e.Reconfigure(c)
	return nil
}

// Sync records text as the current field text without formatting it.
// Hosts call it before applying a change they did not get from the engine,
// so that a rejected edit rolls back to what the user saw.
// Text shorter than the prefix is recorded as the prefix.
func (e *Engine) Sync(text string) {
	c := e.cfg
	if utf8.RuneCountInString(text) < c.prefixLen() {
		text = c.Prefix()
	}
	e.last = text
	e.hasPoint = strings.ContainsRune(c.strip(text), c.Symbols().Decimal)
}

// TextChanged formats text, the field content right after an edit, and
// returns what the field must show instead.
// Cursor is the selection start reported by the host after the edit.
//
// The rules are applied in order:
//   - text shorter than the prefix is replaced by the prefix;
//   - the prefix alone is kept, with the cursor after it;
//   - a second decimal separator is rejected;
//   - otherwise the prefix and grouping separators are removed, a lone
//     decimal separator becomes "0" and the separator, the fraction is
//     truncated to [Config.MaxFrac] digits and the number is written again
//     with grouping, keeping the fraction exactly as typed.
//
// A rejected edit, including one that does not parse as a number, restores
// the last good text with the cursor moved one position back.
// The cursor of an accepted edit is shifted by the change in text length; if
// that falls outside [1, len(text)], it is placed before the last character.
func (e *Engine) TextChanged(text string, cursor int) Edit {
	c := e.cfg
	prefix, plen := c.Prefix(), c.prefixLen()
	if utf8.RuneCountInString(text) < plen || text == prefix {
		return e.commit(prefix, false, plen)
	}

	raw := c.strip(text)
	if strings.Count(raw, string(c.Symbols().Decimal)) > 1 {
		return e.reject(cursor)
	}
	n, err := c.normalize(raw)
	if err != nil {
		return e.reject(cursor)
	}

	out := c.render(n)
	size := utf8.RuneCountInString(out)
	pos := cursor + size - utf8.RuneCountInString(text)
	if pos < 1 || pos > size {
		pos = max(size-1, 0)
	}
	return e.commit(out, n.point, pos)
}

func (e *Engine) commit(text string, point bool, cursor int) Edit {
	e.last = text
	e.hasPoint = point
	return Edit{Text: text, Cursor: cursor}
}

func (e *Engine) reject(cursor int) Edit {
	pos := min(max(cursor-1, 0), utf8.RuneCountInString(e.last))
	return Edit{Text: e.last, Cursor: pos}
}

// Text returns the canonical text: the last text the engine accepted or produced.
func (e *Engine) Text() string {
	return e.last
}

// HasDecimalPoint reports whether the canonical text contains the decimal separator.
func (e *Engine) HasDecimalPoint() bool {
	return e.hasPoint
}

// State returns the editing phase of the canonical text.
func (e *Engine) State() State {
	switch {
	case e.last == e.cfg.Prefix():
		return Empty
	case e.hasPoint:
		return EditingFraction
	default:
		return EditingInteger
	}
}

// Decimal returns the numeric value of the canonical text.
// A field without digits has the value zero. See [Config.Parse].
func (e *Engine) Decimal() (decimal.Decimal, error) {
	return e.cfg.Parse(e.last)
}

// Float64 returns the numeric value of the canonical text as a float64.
// The conversion may lose precision.
func (e *Engine) Float64() (float64, error) {
	d, err := e.Decimal()
	if err != nil {
		return 0, err
	}
	f, ok := d.Float64()
	if !ok {
		return 0, fmt.Errorf("converting %v to float64: %w", d, ErrUnparsable)
	}
	return f, nil
}

// Amount returns the numeric value of the canonical text as an amount in curr.
// If the text has fewer fraction digits than the currency, the amount is zero-padded.
//
// Amount returns an error if the text is not a number or the value does not
// fit an amount of curr.
func (e *Engine) Amount(curr money.Currency) (money.Amount, error) {
	d, err := e.Decimal()
	if err != nil {
		return money.Amount{}, err
	}
	a, err := money.NewAmountFromDecimal(curr, d)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting %v to %v: %w", d, curr, err)
	}
	return a, nil
}
