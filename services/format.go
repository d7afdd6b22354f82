package services

import (
	"fmt"
	"strings"
)

// FormatMoney formats an amount with the given currency symbol using the
// Indian numbering system: after the rightmost 3 digits, digits are grouped
// in pairs (e.g., ₹1,23,45,678.90). An empty symbol defaults to ₹.
// The result always includes exactly 2 decimal places.
func FormatMoney(amount float64, symbol string) string {
	if symbol == "" {
		symbol = "₹"
	}
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := symbol + applyIndianGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// FormatQty prints a computed quantity with up to three decimals and no
// trailing zeros.
func FormatQty(qty float64) string {
	s := fmt.Sprintf("%.3f", RoundQty(qty))
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
