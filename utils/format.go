// utils/format.go - Display formatting helpers
package utils

import (
	"fmt"
	"math"
	"time"
)

// FormatCurrency renders an amount with two decimal places, abbreviating to
// "$X.Xk" at one thousand and above.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if amount >= 1000 {
		return fmt.Sprintf("$%.1fk", amount/1000)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPercent rounds a ratio expressed in percent to the nearest integer
// for display.
func FormatPercent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	return fmt.Sprintf("%d%%", int(math.Round(value)))
}

// FormatDate renders a timestamp as a date string for exports.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatRating renders a rating with one decimal place.
func FormatRating(rating float64) string {
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		rating = 0
	}
	return fmt.Sprintf("%.1f", rating)
}
