package utils

import (
	"fmt"
	"math"
	"strconv"
)

// PercentChange implements the dashboard's change rule: when there is no
// previous value, any current activity reads as a flat 100% increase.
func PercentChange(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatCurrencyK renders an amount as the dashboard's compact currency
// string, e.g. 176500 -> "₹177k".
func FormatCurrencyK(v float64) string {
	return fmt.Sprintf("₹%.0fk", math.Round(v/1000))
}

// FormatCurrency renders a whole-rupee amount, e.g. 1234.56 -> "₹1235".
func FormatCurrency(v float64) string {
	return fmt.Sprintf("₹%.0f", math.Round(v))
}

// FormatCount groups a count with thousands separators, e.g. 1234567 -> "1,234,567".
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
