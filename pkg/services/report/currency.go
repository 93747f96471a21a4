package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale   = "pt-BR"
	DefaultCurrency = "BRL"
)

// CurrencyFormatter renders amounts as whole currency units with locale
// digit grouping, e.g. "R$ 1.234" for pt-BR/BRL. Symbol and number are
// separated by a no-break space.
type CurrencyFormatter struct {
	printer *message.Printer
	symbol  string
}

func NewCurrencyFormatter(locale, code string) (*CurrencyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	printer := message.NewPrinter(tag)
	return &CurrencyFormatter{
		printer: printer,
		symbol:  printer.Sprint(currency.Symbol(unit)),
	}, nil
}

func (f *CurrencyFormatter) Format(value float64) string {
	units := decimal.NewFromFloat(value).Round(0).IntPart()
	sign := ""
	if units < 0 {
		sign = "-"
		units = -units
	}
	return sign + f.symbol + "\u00a0" + f.printer.Sprintf("%d", units)
}
