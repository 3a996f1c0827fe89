package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var rupeePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatRupees renders an amount the way the dashboards show budgets:
// a rupee sign followed by en-IN digit grouping and at most two decimals.
func FormatRupees(amount float64) string {
	return "₹" + rupeePrinter.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}
