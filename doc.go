/*
Package moneyinput implements live formatting of currency input fields.
As a user types digits, an [Engine] turns the raw field text into a grouped,
locale-aware, currency-prefixed string, so that typing "1000" shows "$ 1,000".
Parsing of the typed value relies on the [decimal] package, and finished
values can be handed to the host as [money.Amount].

# Features

  - Grouping of the integer part every three digits with the locale's separator
  - At most one decimal separator, with a configurable number of fraction digits
  - Fraction digits beyond the limit are truncated, never rounded
  - The currency prefix cannot be deleted
  - Cursor placement after every edit, derived from the change in text length

# Representation

Formatting is configured by a [Config], which holds the currency prefix,
the locale [Symbols] and the maximum number of fraction digits.
A Config is immutable; reconfiguration replaces it wholesale.

An [Engine] owns the mutable edit state of exactly one field: whether the
text has a decimal point and the last text it accepted.
Engines are not safe for concurrent use; each field must have its own.

At rest, the text of a field is always

	prefix + groupedInteger [ + decimalSeparator + fraction ]

where fraction has at most [Config.MaxFrac] digits.
Trailing zeros and a dangling decimal separator typed by the user are kept.

# Hosts

The package does not render anything. A host text widget reports changes
to [Engine.TextChanged] and applies the returned [Edit].
[Field] does that wiring for any widget implementing [Widget], including
focus handling and a guard against reacting to its own writes.

# Locales

Separators are resolved from BCP 47 tags by a [LocaleResolver].
The default resolver, [CLDR], uses the [language] and [message] packages.
Malformed tags fall back to the system locale.

# Errors

Invalid configuration, such as fewer than one fraction digit, is reported
by constructors with an error wrapping [ErrInvalidConfig].
Edits that do not form a valid number are never reported: the engine
restores the last good text instead.

[language]: https://pkg.go.dev/golang.org/x/text/language
[message]: https://pkg.go.dev/golang.org/x/text/message
*/
package moneyinput
