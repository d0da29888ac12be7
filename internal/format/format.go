// Package format renders money and dates the way the web pages do (en-US).
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats amount as US dollars with grouping, e.g. "$1,234.50" or
// "-$12.50".
func Currency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole := rounded.IntPart()
	fraction := rounded.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()

	return sign + "$" + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", fraction)
}

// Date formats t as "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
