package moneyinput

import (
	"errors"
	"testing"
)

// widget is a synchronous host: every write notifies the field, like a text
// listener that is never detached.
type widget struct {
	text   string
	sel    int
	writes int
	field  *Field
}

func (w *widget) Text() string {
	return w.text
}

func (w *widget) SetText(text string) {
	w.text = text
	w.writes++
	if w.field != nil {
		w.field.TextChanged(runeLen(text))
	}
}

func (w *widget) SetSelection(pos int) {
	w.sel = pos
	if w.field != nil {
		w.field.SelectionChanged(pos, pos)
	}
}

// typeText simulates the user inserting s at the cursor.
func (w *widget) typeText(s string) {
	r := []rune(w.text)
	text := string(r[:w.sel]) + s + string(r[w.sel:])
	w.text = text
	w.sel += runeLen(s)
	w.field.TextChanged(w.sel)
}

// backspace simulates the user deleting the character before the cursor.
func (w *widget) backspace() {
	if w.sel == 0 {
		return
	}
	r := []rune(w.text)
	w.text = string(r[:w.sel-1]) + string(r[w.sel:])
	w.sel--
	w.field.TextChanged(w.sel)
}

var usd = LocaleResolverFunc(func(string) (Symbols, error) {
	return DefaultSymbols, nil
})

func newTestField(t *testing.T, opts Options) (*Field, *widget) {
	t.Helper()
	w := &widget{}
	f, err := NewField(w, opts, usd)
	if err != nil {
		t.Fatalf("NewField(%+v) failed: %v", opts, err)
	}
	w.field = f
	return f, w
}

func TestNewField(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		_, err := NewField(&widget{}, Options{CurrencySymbol: "$", MaxDecimalDigits: 0}, usd)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewField() = %v, want %v", err, ErrInvalidConfig)
		}
	})
}

func TestField_Typing(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
	f.Focus()
	if w.text != "$ " || w.sel != 2 {
		t.Fatalf("Focus() = %q at %v, want %q at %v", w.text, w.sel, "$ ", 2)
	}

	steps := []struct {
		key  string
		want string
		sel  int
	}{
		{"1", "$ 1", 3},
		{"0", "$ 10", 4},
		{"0", "$ 100", 5},
		{"0", "$ 1,000", 7},
		{".", "$ 1,000.", 8},
		{"5", "$ 1,000.5", 9},
		{"0", "$ 1,000.50", 10},
		{"9", "$ 1,000.50", 10},
		{".", "$ 1,000.50", 10},
	}
	for _, s := range steps {
		w.typeText(s.key)
		if w.text != s.want || w.sel != s.sel {
			t.Errorf("typing %q = %q at %v, want %q at %v", s.key, w.text, w.sel, s.want, s.sel)
		}
	}

	got, err := f.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if got.String() != "1000.50" {
		t.Errorf("Value() = %v, want %v", got, "1000.50")
	}
}

func TestField_Backspace(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
	f.SetText("1000")
	if w.text != "$ 1,000" || w.sel != 7 {
		t.Fatalf("SetText(%q) = %q at %v", "1000", w.text, w.sel)
	}
	wants := []string{"$ 100", "$ 10", "$ 1", "$ ", "$ ", "$ "}
	for _, want := range wants {
		w.backspace()
		if w.text != want {
			t.Errorf("backspace = %q, want %q", w.text, want)
		}
	}
	if w.sel != 2 {
		t.Errorf("cursor = %v, want %v", w.sel, 2)
	}
}

func TestField_Reentrancy(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
	w.text = "$ 1000"
	w.sel = 6
	f.TextChanged(6)
	if w.text != "$ 1,000" || w.sel != 7 {
		t.Errorf("TextChanged = %q at %v, want %q at %v", w.text, w.sel, "$ 1,000", 7)
	}
	if w.writes != 1 {
		t.Errorf("TextChanged wrote %v time(s), want 1", w.writes)
	}

	// Canonical text is not written again.
	f.TextChanged(7)
	if w.writes != 1 {
		t.Errorf("TextChanged wrote %v time(s), want 1", w.writes)
	}
}

func TestField_FocusBlur(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "€", UseCurrencySymbolAsHint: true, MaxDecimalDigits: 2})
	if f.Hint() != "€ " {
		t.Errorf("Hint() = %q, want %q", f.Hint(), "€ ")
	}
	f.Focus()
	if w.text != "€ " || w.sel != 2 {
		t.Errorf("Focus() = %q at %v", w.text, w.sel)
	}
	f.Blur()
	if w.text != "" {
		t.Errorf("Blur() = %q, want \"\"", w.text)
	}

	f.Focus()
	w.typeText("7")
	f.Blur()
	if w.text != "€ 7" {
		t.Errorf("Blur() = %q, want %q", w.text, "€ 7")
	}
	f.Focus()
	if w.text != "€ 7" {
		t.Errorf("Focus() = %q, want %q", w.text, "€ 7")
	}
}

func TestField_SelectionChanged(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
	f.SetText("25")
	tests := []struct {
		start, end int
		want       int
	}{
		{0, 0, 2},
		{1, 1, 2},
		{0, 1, 2},
	}
	for _, tt := range tests {
		w.sel = tt.end
		f.SelectionChanged(tt.start, tt.end)
		if w.sel != tt.want {
			t.Errorf("SelectionChanged(%v, %v) moved cursor to %v, want %v", tt.start, tt.end, w.sel, tt.want)
		}
	}

	w.sel = 3
	f.SelectionChanged(3, 3)
	if w.sel != 3 {
		t.Errorf("SelectionChanged(3, 3) moved cursor to %v, want 3", w.sel)
	}
}

func TestField_Reconfigure(t *testing.T) {
	t.Run("locale", func(t *testing.T) {
		r := LocaleResolverFunc(func(tag string) (Symbols, error) {
			if tag == "da-DK" {
				return Symbols{',', '.'}, nil
			}
			return DefaultSymbols, nil
		})
		w := &widget{}
		f, err := NewField(w, Options{CurrencySymbol: "kr", MaxDecimalDigits: 2}, r)
		if err != nil {
			t.Fatalf("NewField failed: %v", err)
		}
		w.field = f
		f.SetLocale("da-DK")
		if got := f.AcceptedChars(); got != "0123456789," {
			t.Errorf("AcceptedChars() = %q, want %q", got, "0123456789,")
		}
		if f.Options().LocaleTag != "da-DK" {
			t.Errorf("Options().LocaleTag = %q", f.Options().LocaleTag)
		}
		f.SetText("1000,5")
		if w.text != "kr 1.000,5" {
			t.Errorf("SetText(%q) = %q, want %q", "1000,5", w.text, "kr 1.000,5")
		}
	})

	t.Run("currency symbol", func(t *testing.T) {
		f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
		f.SetCurrencySymbol("₦", true)
		if f.Hint() != "₦ " {
			t.Errorf("Hint() = %q, want %q", f.Hint(), "₦ ")
		}
		f.SetText("₦ 250")
		if w.text != "₦ 250" {
			t.Errorf("SetText(%q) = %q", "₦ 250", w.text)
		}
		a, err := f.Amount("NGN")
		if err != nil {
			t.Fatalf("Amount(NGN) failed: %v", err)
		}
		if a.String() != "NGN 250.00" {
			t.Errorf("Amount(NGN) = %v, want %v", a, "NGN 250.00")
		}
	})

	t.Run("currency symbol without hint", func(t *testing.T) {
		f, _ := newTestField(t, Options{CurrencySymbol: "$", UseCurrencySymbolAsHint: true, MaxDecimalDigits: 2})
		f.SetCurrencySymbol("€", false)
		if f.Hint() != "$ " {
			t.Errorf("Hint() = %q, want %q", f.Hint(), "$ ")
		}
		if got := f.Engine().Config().Prefix(); got != "€ " {
			t.Errorf("Prefix() = %q, want %q", got, "€ ")
		}
		f.SetCurrencySymbol("£", true)
		if f.Hint() != "£ " {
			t.Errorf("Hint() = %q, want %q", f.Hint(), "£ ")
		}
	})

	t.Run("hint off", func(t *testing.T) {
		f, _ := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
		f.SetCurrencySymbol("€", false)
		if f.Hint() != "" {
			t.Errorf("Hint() = %q, want \"\"", f.Hint())
		}
	})

	t.Run("max decimal digits", func(t *testing.T) {
		f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
		if err := f.SetMaxDecimalDigits(3); err != nil {
			t.Fatalf("SetMaxDecimalDigits(3) failed: %v", err)
		}
		f.SetText("$ 1,320.519923345634")
		if w.text != "$ 1,320.519" {
			t.Errorf("SetText = %q, want %q", w.text, "$ 1,320.519")
		}
		if err := f.SetMaxDecimalDigits(0); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("SetMaxDecimalDigits(0) = %v, want %v", err, ErrInvalidConfig)
		}
		if f.Options().MaxDecimalDigits != 3 {
			t.Errorf("Options().MaxDecimalDigits = %v, want 3", f.Options().MaxDecimalDigits)
		}
	})
}

func TestField_Value(t *testing.T) {
	f, w := newTestField(t, Options{CurrencySymbol: "$", MaxDecimalDigits: 2})
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"$ ", 0},
		{"$ 1,320.5", 1320.5},
	}
	for _, tt := range tests {
		w.text = tt.text
		got, err := f.Float64()
		if err != nil {
			t.Errorf("Float64() for %q failed: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Float64() for %q = %v, want %v", tt.text, got, tt.want)
		}
	}

	if _, err := f.Amount("XYZ"); err == nil {
		t.Errorf("Amount(XYZ) did not fail")
	}
}
