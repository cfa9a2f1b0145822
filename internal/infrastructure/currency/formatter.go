package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts for invoices and API responses.
// Arithmetic stays in decimal space; the float conversion here is
// display-only.
type Formatter struct {
	printer *message.Printer
	unit    xcurrency.Unit
}

// NewFormatter creates a Formatter for the given ISO 4217 currency code
// and BCP 47 locale.
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := xcurrency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}, nil
}

// Format renders the amount with the currency symbol and locale-aware
// digit grouping, always with two fraction digits.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprintf("%v%v",
		xcurrency.Symbol(f.unit),
		number.Decimal(amount.InexactFloat64(), number.Scale(2)),
	)
}
