// Package currency formats in-game money amounts for log lines.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders integer amounts with a title-specific currency symbol
// and locale-aware digit grouping.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given currency symbol.
func NewFormatter(symbol string) *Formatter {
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Format renders an amount, e.g. Format(1200) -> "$1,200".
func (f *Formatter) Format(amount int) string {
	return f.symbol + f.printer.Sprintf("%d", amount)
}
