// Package report renders computation results for people: German number
// formatting and a plain-text summary.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.German)

// FormatEuro renders v with two fixed decimals in German grouping, e.g.
// 1234.5 -> "1.234,50". Amounts are rounded half away from zero to the cent.
func FormatEuro(v float64) string {
	return formatCents(decimal.NewFromFloat(v).Round(2))
}

// FormatEuroSigned prefixes "-" for negative amounts and formats the
// magnitude. Values that round to zero carry no sign.
func FormatEuroSigned(v float64) string {
	cents := decimal.NewFromFloat(v).Round(2)
	if cents.IsNegative() {
		return "-" + formatCents(cents.Abs())
	}
	return formatCents(cents)
}

// FormatPercent renders a rate as a percentage with two decimals, e.g.
// 0.2273 -> "22,73 %".
func FormatPercent(rate float64) string {
	return FormatEuro(rate*100) + " %"
}

func formatCents(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(2)))
}
