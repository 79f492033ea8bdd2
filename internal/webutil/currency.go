// Package webutil holds the small helpers the templates consume.
package webutil

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a price as Brazilian reais for the templates,
// e.g. "R$ 1.899,90".
func FormatBRL(value float64) string {
	return brPrinter.Sprint(currency.Symbol(currency.BRL.Amount(value)))
}
