package utils

import "fmt"

// Monetary amounts are stored as integer cents. FormatCents renders them
// as the fixed two-decimal strings used by reports and exports.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
