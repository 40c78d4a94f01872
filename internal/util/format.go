package util

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FormatDamage renders a damage value compactly for legends and axes.
// Brackets are inclusive of their lower bound:
//
//	>= 100G  -> 1 decimal, G
//	>= 1000M -> 0 decimals, M
//	>= 1M    -> 1 decimal, M
//	>= 1K    -> floored, K
//	else     -> floored integer
//
// Anything above 999.9G no longer fits the legend column.
func FormatDamage(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	if value < 0 {
		return "-" + FormatDamage(-value)
	}

	switch {
	case value >= 100_000_000_000:
		return fmt.Sprintf("%.1fG", value/1_000_000_000)
	case value >= 1_000_000_000:
		return fmt.Sprintf("%.0fM", value/1_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("%.1fM", value/1_000_000)
	case value >= 1_000:
		return strconv.FormatFloat(math.Floor(value/1_000), 'f', -1, 64) + "K"
	default:
		return strconv.FormatFloat(math.Floor(value), 'f', -1, 64)
	}
}

// FormatFixed2 formats a panel value with thousands separators and two decimals
func FormatFixed2(value float64) string {
	return humanize.FormatFloat("#,###.##", value)
}

// FormatPercentage formats a ratio already scaled to 0-100
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
