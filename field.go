package moneyinput

import (
	"fmt"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"github.com/govalues/money"
)

// Widget is the part of a host text input that a [Field] drives.
// Positions are counted in runes.
type Widget interface {
	Text() string
	SetText(text string)
	SetSelection(pos int)
}

// Field binds an [Engine] to a [Widget].
// The host forwards widget events to the corresponding Field methods;
// the Field writes the formatted text and cursor back to the widget.
//
// Writes made by the Field itself are not formatted again: a host that
// reports them synchronously through [Field.TextChanged] is ignored while
// the Field is applying its own output.
type Field struct {
	w        Widget
	eng      *Engine
	opts     Options
	resolver LocaleResolver
	hint     string
	applying bool
}

// NewField returns a field that formats w according to opts.
// The locale tag is resolved with r; a nil r means [CLDR].
//
// NewField returns an error wrapping [ErrInvalidConfig] if the options are invalid.
func NewField(w Widget, opts Options, r LocaleResolver) (*Field, error) {
	cfg, err := opts.Config(r)
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}
	return &Field{w: w, eng: NewEngine(cfg), opts: opts, resolver: r, hint: opts.Hint()}, nil
}

// Engine returns the engine formatting the field.
func (f *Field) Engine() *Engine {
	return f.eng
}

// Options returns the current settings of the field.
func (f *Field) Options() Options {
	return f.opts
}

// TextChanged formats the widget text after an edit.
// Cursor is the selection start right after the edit.
func (f *Field) TextChanged(cursor int) {
	if f.applying {
		return
	}
	f.apply(f.eng.TextChanged(f.w.Text(), cursor))
}

// SetText replaces the field content, formats it and puts the cursor at the end.
func (f *Field) SetText(text string) {
	f.eng.Sync(f.w.Text())
	ed := f.eng.TextChanged(text, utf8.RuneCountInString(text))
	ed.Cursor = utf8.RuneCountInString(ed.Text)
	f.apply(ed)
}

// Focus must be called when the widget gains focus.
// An empty field then shows the prefix, with the cursor after it.
func (f *Field) Focus() {
	if f.w.Text() == "" {
		f.apply(f.eng.TextChanged("", 0))
	}
}

// Blur must be called when the widget loses focus.
// A field showing only the prefix is emptied, so that the hint, if any, shows again.
func (f *Field) Blur() {
	if prefix := f.eng.Config().Prefix(); prefix != "" && f.w.Text() == prefix {
		f.apply(Edit{Text: "", Cursor: 0})
	}
}

// SelectionChanged must be called when the widget selection moves.
// A selection ending inside the prefix is moved to the end of the prefix.
func (f *Field) SelectionChanged(start, end int) {
	if f.applying {
		return
	}
	n := f.eng.Config().prefixLen()
	if end < n && utf8.RuneCountInString(f.w.Text()) >= n {
		f.applying = true
		defer func() { f.applying = false }()
		f.w.SetSelection(n)
	}
}

func (f *Field) apply(ed Edit) {
	f.applying = true
	defer func() { f.applying = false }()
	if f.w.Text() != ed.Text {
		f.w.SetText(ed.Text)
	}
	f.w.SetSelection(ed.Cursor)
}

// Hint returns the placeholder the host should show while the field is empty.
// It changes only when [Field.SetCurrencySymbol] is called with asHint set.
func (f *Field) Hint() string {
	return f.hint
}

// AcceptedChars returns the characters the host keyboard should be restricted to.
func (f *Field) AcceptedChars() string {
	return f.eng.Config().AcceptedChars()
}

// SetLocale replaces the separators with those of a BCP 47 tag.
// Malformed tags select the system locale. The edit state is reset.
func (f *Field) SetLocale(tag string) {
	f.opts.LocaleTag = tag
	c := f.eng.Config()
	c.syms = ResolveSymbols(f.resolver, tag)
	f.eng.Reconfigure(c)
}

// SetCurrencySymbol replaces the currency symbol shown before the number.
// If asHint is set, the new prefix also becomes the hint; otherwise the hint
// is left as it was. The edit state is reset.
func (f *Field) SetCurrencySymbol(symbol string, asHint bool) {
	f.opts.CurrencySymbol = symbol
	if asHint {
		f.opts.UseCurrencySymbolAsHint = true
		f.hint = PrefixOf(symbol)
	}
	f.eng.SetCurrencySymbol(symbol)
}

// SetMaxDecimalDigits replaces the maximum number of fraction digits.
// The edit state is reset.
//
// SetMaxDecimalDigits returns an error wrapping [ErrInvalidConfig] if maxFrac
// is less than 1 or greater than [decimal.MaxScale]; the field is then left unchanged.
func (f *Field) SetMaxDecimalDigits(maxFrac int) error {
	if err := f.eng.SetMaxDecimalDigits(maxFrac); err != nil {
		return err
	}
	f.opts.MaxDecimalDigits = maxFrac
	return nil
}

// Value returns the numeric value of the widget text.
// An empty field, or one showing only the prefix, has the value zero.
func (f *Field) Value() (decimal.Decimal, error) {
	return f.eng.Config().Parse(f.w.Text())
}

// Float64 is like [Field.Value] but returns a float64, which may lose precision.
func (f *Field) Float64() (float64, error) {
	d, err := f.Value()
	if err != nil {
		return 0, err
	}
	v, ok := d.Float64()
	if !ok {
		return 0, fmt.Errorf("converting %v to float64: %w", d, ErrUnparsable)
	}
	return v, nil
}

// Amount returns the numeric value of the widget text in the currency with
// the given ISO 4217 code. See [money.ParseCurr] for the accepted codes.
func (f *Field) Amount(curr string) (money.Amount, error) {
	c, err := money.ParseCurr(curr)
	if err != nil {
		return money.Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := f.Value()
	if err != nil {
		return money.Amount{}, err
	}
	a, err := money.NewAmountFromDecimal(c, d)
	if err != nil {
		return money.Amount{}, fmt.Errorf("converting %v to %v: %w", d, c, err)
	}
	return a, nil
}
