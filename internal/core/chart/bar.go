package chart

import (
	"github.com/penwyp/go-battle-overlay/internal/core/battle"
)

// BarWidth is the bar width in x-axis units, leaving a gap between neighbours
const BarWidth = 0.7

// BarEntry is one combatant's bar
type BarEntry struct {
	Avatar       battle.Avatar
	Value        float64
	PaletteIndex int
}

// BuildBars emits one bar per lineup member, unsorted.
func BuildBars(damages []float64, lineup []battle.Avatar) []BarEntry {
	bars := make([]BarEntry, 0, len(lineup))
	for i, avatar := range lineup {
		bars = append(bars, BarEntry{
			Avatar:       avatar,
			Value:        valueAt(damages, i),
			PaletteIndex: i,
		})
	}
	return bars
}

// AxisLabel returns the x-axis label for the bar at position x, or "" when
// x falls outside the lineup. wrap receives the avatar name.
func AxisLabel(lineup []battle.Avatar, x float64, wrap func(string) string) string {
	if x < 0 {
		return ""
	}
	i := int(x)
	if i >= len(lineup) {
		return ""
	}
	return wrap(lineup[i].Name)
}
