package view

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "₹"
	dateLayout     = "02 Jan 2006"
	dateTimeLayout = "02 Jan 2006, 03:04 PM"
	emptyValue     = "-"
)

// Rupee amounts use Indian digit grouping (lakh, crore).
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency renders an amount with the rupee symbol, Indian digit
// grouping and two decimals, e.g. 123456.5 → "₹1,23,456.50". Non-finite
// amounts render as zero.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	amount = math.Round(amount*100) / 100
	if amount == 0 {
		amount = 0 // drop negative zero
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + currencySymbol + printer.Sprintf("%.2f", amount)
}

// FormatDate renders t as "02 Jan 2006" in loc, or "-" for the zero time.
func FormatDate(t time.Time, loc *time.Location) string {
	return format(t, loc, dateLayout)
}

// FormatDateTime renders t with a 12-hour clock in loc, or "-" for the zero time.
func FormatDateTime(t time.Time, loc *time.Location) string {
	return format(t, loc, dateTimeLayout)
}

func format(t time.Time, loc *time.Location, layout string) string {
	if t.IsZero() {
		return emptyValue
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(layout)
}

// FormatOptionalDate is FormatDate for nullable timestamps.
func FormatOptionalDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return emptyValue
	}
	return FormatDate(*t, loc)
}
