// Package view renders page state to terminal output. Functions here are
// pure: state in, text (or PNG bytes) out, no network access.
package view

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money formats an amount for display with two decimal places. Rounding is
// display-only; stored amounts keep their original precision.
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// Percent formats a percentage without trailing zeros.
func Percent(p float64) string {
	return fmt.Sprintf("%s%%", decimal.NewFromFloat(p).String())
}

// categoryIcons is the fixed icon lookup table; unknown categories fall
// back to the cart.
var categoryIcons = map[string]string{
	"Groceries":      "🛒",
	"Dining":         "🍕",
	"Transportation": "⛽",
	"Utilities":      "🏠",
	"Entertainment":  "🎮",
}

const defaultCategoryIcon = "🛒"

// CategoryIcon returns the icon for a spending category.
func CategoryIcon(name string) string {
	if icon, ok := categoryIcons[name]; ok {
		return icon
	}
	return defaultCategoryIcon
}
