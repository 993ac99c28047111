// Package format renders monetary and percentage values for display.
package format

import (
	"fmt"
	"math"
)

// Placeholder is rendered wherever a numeric cell is absent or unparseable.
const Placeholder = "–"

// Euro formats a monetary amount: millions with two decimals, thousands
// with one decimal, anything smaller as a whole number.
//
//	1_000_000 -> "€1.00M"
//	1_500     -> "€1.5K"
//	500       -> "€500"
//
// Thresholds apply to the magnitude so negative amounts keep their sign.
func Euro(v float64) string {
	switch {
	case math.Abs(v) >= 1_000_000:
		return fmt.Sprintf("€%.2fM", v/1_000_000)
	case math.Abs(v) >= 1_000:
		return fmt.Sprintf("€%.1fK", v/1_000)
	default:
		return fmt.Sprintf("€%d", int64(math.Round(v)))
	}
}

// Percent formats a percentage with an explicit sign for non-negative
// values, so gains read "+3.2%" rather than "3.2%".
func Percent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
