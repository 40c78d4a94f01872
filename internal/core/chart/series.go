package chart

import (
	"github.com/penwyp/go-battle-overlay/internal/core/battle"
)

// SeriesPoint is one sample of a damage graph
type SeriesPoint struct {
	X float64
	Y float64
}

// Polyline is one combatant's damage graph
type Polyline struct {
	Avatar       battle.Avatar
	PaletteIndex int
	Points       []SeriesPoint
}

// BuildTurnSeries plots each combatant's per-turn damage against the
// 1-based turn number. Combatants without samples get no polyline.
func BuildTurnSeries(lineup []battle.Avatar, history []battle.TurnRecord) []Polyline {
	return buildSeries(lineup, len(history), func(row, i int) (SeriesPoint, bool) {
		damages := history[row].AvatarsTurnDamage
		if i >= len(damages) {
			return SeriesPoint{}, false
		}
		return SeriesPoint{X: float64(row + 1), Y: damages[i]}, true
	})
}

// BuildAVSeries plots each combatant's damage against the cumulative
// action value at which it was sampled.
func BuildAVSeries(lineup []battle.Avatar, history []battle.AVRecord) []Polyline {
	return buildSeries(lineup, len(history), func(row, i int) (SeriesPoint, bool) {
		rec := history[row]
		if i >= len(rec.AvatarsTurnDamage) {
			return SeriesPoint{}, false
		}
		return SeriesPoint{X: rec.ActionValue, Y: rec.AvatarsTurnDamage[i]}, true
	})
}

func buildSeries(lineup []battle.Avatar, rows int, sample func(row, i int) (SeriesPoint, bool)) []Polyline {
	lines := make([]Polyline, 0, len(lineup))
	for i, avatar := range lineup {
		points := make([]SeriesPoint, 0, rows)
		for row := 0; row < rows; row++ {
			if p, ok := sample(row, i); ok {
				points = append(points, p)
			}
		}
		if len(points) == 0 {
			continue
		}
		lines = append(lines, Polyline{
			Avatar:       avatar,
			PaletteIndex: i,
			Points:       points,
		})
	}
	return lines
}

// Bounds returns the min/max of x and y across all polylines; ok is false
// when there are no points.
func Bounds(lines []Polyline) (minX, maxX, minY, maxY float64, ok bool) {
	for _, line := range lines {
		for _, p := range line.Points {
			if !ok {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				ok = true
				continue
			}
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}
	return
}
