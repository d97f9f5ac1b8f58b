package ledger

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Currency is the display currency of an account. It never takes part in arithmetic.
type Currency struct {
	Locale language.Tag
	Code   string
	Symbol string
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"CHF": "CHF",
	"CAD": "C$",
	"AUD": "A$",
	"INR": "₹",
	"BRL": "R$",
	"SEK": "kr",
	"TWD": "NT$",
}

// ResolveCurrency maps a BCP 47 locale such as "en-US" or "it-IT" to the currency used in its region.
func ResolveCurrency(locale string) (Currency, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %q: %v", ErrUnknownLocale, locale, err)
	}
	return CurrencyFromTag(tag)
}

// CurrencyFromTag is ResolveCurrency for an already parsed tag.
func CurrencyFromTag(tag language.Tag) (Currency, error) {
	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownLocale, tag.String())
	}

	code := unit.String()
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}

	return Currency{Locale: tag, Code: code, Symbol: symbol}, nil
}

// Format renders the absolute value of amount with the currency symbol, e.g. "$1,234.50".
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol + formatAmount(amount.Abs())
}

// formatAmount renders "1,234.50" without going through float64.
func formatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	fixed := rounded.Abs().StringFixed(2)
	out := humanize.BigComma(rounded.Abs().BigInt()) + fixed[strings.IndexByte(fixed, '.'):]
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

func formatSigned(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + formatAmount(amount.Abs())
	}
	return symbol + formatAmount(amount)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
