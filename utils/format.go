// utils/format.go
package utils

import (
	"fmt"
	"time"
)

// CurrencySymbol prefixes every rendered amount. Display-only; amounts
// are stored as plain numbers.
const CurrencySymbol = "₹"

// FormatMoney renders an amount with the currency symbol and two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}

// FormatDate renders a calendar date as day/month/year.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
