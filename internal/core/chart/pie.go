// Package chart turns per-combatant damage series into chart-ready geometry.
// Every builder is a pure function of its inputs; output order always
// follows lineup order and palette indices are lineup positions.
package chart

import (
	"math"

	"github.com/penwyp/go-battle-overlay/internal/core/battle"
)

const (
	// PieRadius is the slice radius in plot units
	PieRadius = 0.8
	// PieSteps is the number of angular steps sampled along each arc
	PieSteps = 50
	// PieStartAngle puts the first slice at 12 o'clock
	PieStartAngle = -math.Pi / 2
)

// PieSegment is a closed polygon starting and ending at the center (0,0)
type PieSegment struct {
	Points     [][2]float64
	Value      float64
	StartAngle float64
	EndAngle   float64
}

// Span is the angle covered by the segment in radians
func (s PieSegment) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// PieSlice ties a segment to its combatant and lineup position
type PieSlice struct {
	Avatar  battle.Avatar
	Segment PieSegment
	Index   int
}

// SumDamages totals a damage series
func SumDamages(damages []float64) float64 {
	total := 0.0
	for _, d := range damages {
		total += d
	}
	return total
}

// BuildPieSegments partitions the full circle among the lineup in
// proportion to each member's damage. The caller must ensure the damage
// total is positive; with a zero total the angles are undefined.
func BuildPieSegments(damages []float64, lineup []battle.Avatar) []PieSlice {
	total := SumDamages(damages)
	slices := make([]PieSlice, 0, len(lineup))
	start := PieStartAngle

	for i, avatar := range lineup {
		damage := valueAt(damages, i)
		end := start + damage/total*2*math.Pi

		slices = append(slices, PieSlice{
			Avatar: avatar,
			Segment: PieSegment{
				Points:     pieSlicePoints(start, end),
				Value:      damage,
				StartAngle: start,
				EndAngle:   end,
			},
			Index: i,
		})
		start = end
	}

	return slices
}

func pieSlicePoints(start, end float64) [][2]float64 {
	center := [2]float64{0, 0}
	points := make([][2]float64, 0, PieSteps+3)
	points = append(points, center)

	step := (end - start) / PieSteps
	for i := 0; i <= PieSteps; i++ {
		sin, cos := math.Sincos(start + step*float64(i))
		points = append(points, [2]float64{cos * PieRadius, sin * PieRadius})
	}

	return append(points, center)
}

func valueAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
