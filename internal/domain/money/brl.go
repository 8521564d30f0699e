package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The storefront always displays Brazilian reais in Brazilian Portuguese.
var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders a minor-unit amount (centavos) as a pt-BR currency
// string, e.g. 9990 => "R$ 99,90".
func FormatBRL(unitAmount int64) string {
	return brlPrinter.Sprint(currency.Symbol(currency.BRL.Amount(float64(unitAmount) / 100)))
}

// MajorUnits converts a minor-unit amount to reais.
func MajorUnits(unitAmount int64) float64 {
	return float64(unitAmount) / 100
}
