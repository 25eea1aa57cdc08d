package moneyinput_test

import (
	"fmt"

	"github.com/govalues/money"
	"github.com/govalues/moneyinput"
)

// In this example, digits are typed one at a time at the end of a dollar field.
func Example_typing() {
	cfg := moneyinput.MustNewConfig("$ ", moneyinput.DefaultSymbols, 2)
	e := moneyinput.NewEngine(cfg)

	text := e.TextChanged("", 0).Text
	for _, key := range "1320.509" {
		typed := text + string(key)
		ed := e.TextChanged(typed, len([]rune(typed)))
		fmt.Printf("%-4q -> %-12q cursor %v\n", key, ed.Text, ed.Cursor)
		text = ed.Text
	}
	// Output:
	// '1'  -> "$ 1"        cursor 3
	// '3'  -> "$ 13"       cursor 4
	// '2'  -> "$ 132"      cursor 5
	// '0'  -> "$ 1,320"    cursor 7
	// '.'  -> "$ 1,320."   cursor 8
	// '5'  -> "$ 1,320.5"  cursor 9
	// '0'  -> "$ 1,320.50" cursor 10
	// '9'  -> "$ 1,320.50" cursor 10
}

func ExampleTruncFrac() {
	fmt.Println(moneyinput.TruncFrac("223.55644234234", 2, '.'))
	fmt.Println(moneyinput.TruncFrac("23.4", 3, '.'))
	fmt.Println(moneyinput.TruncFrac("343,432,242,342", 2, '.'))
	// Output:
	// 223.55
	// 23.4
	// 343,432,242,342
}

func ExampleEngine_TextChanged() {
	cfg := moneyinput.MustNewConfig("€ ", moneyinput.Symbols{Decimal: ',', Group: '.'}, 2)
	e := moneyinput.NewEngine(cfg)
	fmt.Println(e.TextChanged("€ 1000", 6))
	fmt.Println(e.TextChanged("€ 1.000,", 8))
	fmt.Println(e.TextChanged("€ 1.000,,", 9))
	fmt.Println(e.TextChanged("", 0))
	// Output:
	// {€ 1.000 7}
	// {€ 1.000, 8}
	// {€ 1.000, 8}
	// {€  2}
}

func ExampleEngine_Amount() {
	cfg := moneyinput.MustNewConfig("$ ", moneyinput.DefaultSymbols, 2)
	e := moneyinput.NewEngine(cfg)
	e.TextChanged("$ 1,320.5", 9)
	a, err := e.Amount(money.MustParseCurr("USD"))
	if err != nil {
		panic(err)
	}
	fmt.Println(a)
	// Output: USD 1320.50
}

func ExampleOptions_Config() {
	opts := moneyinput.DefaultOptions()
	opts.CurrencySymbol = "kr"
	opts.LocaleTag = "da-DK"
	cfg, err := opts.Config(moneyinput.CLDR)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q %q\n", cfg.Prefix(), cfg.AcceptedChars())
	s, err := cfg.Format("1234567,891")
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output:
	// "kr " "0123456789,"
	// kr 1.234.567,89
}
