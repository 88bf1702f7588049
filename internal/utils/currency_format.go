package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Display symbols for the currencies the tracker knows about. Unknown codes
// fall back to the code itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// FormatAmount formats an amount with two decimal places and the symbol for
// the given currency code.
// Example: amount 12.3456 with USD returns "$12.35".
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	symbol, ok := currencySymbols[currencyCode]
	if !ok {
		return fmt.Sprintf("%s %s", currencyCode, amount.StringFixed(2))
	}
	return symbol + amount.StringFixed(2)
}

// FormatSigned formats an amount with a leading + or - depending on whether
// it is income or an expense.
func FormatSigned(amount decimal.Decimal, currencyCode string, isExpense bool) string {
	if isExpense {
		return "-" + FormatAmount(amount, currencyCode)
	}
	return "+" + FormatAmount(amount, currencyCode)
}
