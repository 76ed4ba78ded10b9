package services

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatINR formats a whole-rupee amount in Indian Rupee notation without
// decimals. After the rightmost 3 digits, digits are grouped in pairs
// (e.g., ₹1,23,45,678).
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	result := "₹" + applyIndianGrouping(strconv.FormatInt(amount, 10))
	if negative {
		result = "-" + result
	}
	return result
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

// FormatArea renders a carpet area with at most two decimals ("1000", "166.67").
func FormatArea(area decimal.Decimal) string {
	return area.Round(2).String()
}
