// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
)

// FormatPercent formats a 0-1 fraction as a whole percentage.
// e.g., 0.6 -> "60%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(f*100))
}

// FormatPerWeek renders an attendance frequency.
// e.g., 5 -> "5/week"
func FormatPerWeek(days int) string {
	return fmt.Sprintf("%d/week", days)
}

// FormatDays pluralizes a day count.
// e.g., 1 -> "1 day", 14 -> "14 days"
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
