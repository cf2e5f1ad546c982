// Package money formats whole-peso amounts the way receipts and chat messages show them.
package money

import (
	"strconv"
	"strings"
)

const thousandsSeparator = "."

// Format renders an amount as "$1.234.567". Negative balances keep the sign after the symbol.
func Format(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}

	groups = append([]string{digits}, groups...)

	return "$" + sign + strings.Join(groups, thousandsSeparator)
}
