// Package format renders dashboard figures for display.
//
// Numbers use English grouping ("$1,375,000") via golang.org/x/text/message.
// Nil pointers, which the calculators use for "not computable", render as NA.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NA is shown in place of a figure that cannot be computed.
const NA = "N/A"

var printer = message.NewPrinter(language.English)

// Money formats v as whole dollars with thousands separators.
func Money(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", v)
}

// Number formats v with thousands separators and the given decimals.
func Number(v float64, decimals int) string {
	return printer.Sprintf("%.*f", decimals, v)
}

// Percent formats v (already scaled to 0-100) with one decimal place.
func Percent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// Years formats a period such as "1.36 years".
func Years(v float64, decimals int) string {
	return printer.Sprintf("%.*f years", decimals, v)
}

// OptionalYears formats p like Years, or NA when p is nil.
func OptionalYears(p *float64, decimals int) string {
	if p == nil {
		return NA
	}
	return Years(*p, decimals)
}
