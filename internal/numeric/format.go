package numeric

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand
// separators on the integer part.
// Example: FormatFloat(95000.5, 2) returns "95,000.50".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := fmt.Sprintf("%.*f", precision, f)
	intPart, decPart, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var n int64
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return formatted
		}
		n = n*10 + int64(c-'0')
	}
	// Keep the sign as a prefix so values between -1 and 0 stay negative.
	out := printer.Sprintf("%d", n) + "." + decPart
	if negative {
		return "-" + out
	}
	return out
}

// FormatCurrency renders a dollar amount with two decimals and thousand
// separators. Example: FormatCurrency(95000) returns "$95,000.00".
func FormatCurrency(f float64) string {
	if f < 0 {
		return "-$" + FormatFloat(-f, 2)
	}
	return "$" + FormatFloat(f, 2)
}
