// Package model holds the render-ready data shared between the overlay
// loop and the rendering surfaces.
package model

import (
	"github.com/penwyp/go-battle-overlay/internal/core/chart"
	"github.com/penwyp/go-battle-overlay/internal/core/config"
	"github.com/penwyp/go-battle-overlay/internal/core/palette"
)

// Viewport is the space available to the charts, in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// PieShape is one filled and stroked pie slice
type PieShape struct {
	Name        string
	Index       int
	Value       float64
	Points      [][2]float64
	Stroke      palette.Color
	StrokeWidth float64
	Fill        palette.RGBA
}

// LegendLine is one colored legend row
type LegendLine struct {
	Color      palette.Color
	Name       string
	Damage     float64
	Percentage float64
	DPAV       float64
	Text       string
}

// BarShape is one bar of the per-combatant damage chart
type BarShape struct {
	X     float64
	Value float64
	Width float64
	Color palette.Color
	Name  string
	Label string
}

// GraphLine is one combatant's damage polyline
type GraphLine struct {
	Name   string
	Color  palette.Color
	Width  float64
	Points []chart.SeriesPoint
}

// Graph is the damage-over-time chart in the selected x unit
type Graph struct {
	Unit   config.GraphUnit
	XLabel string
	YLabel string
	Lines  []GraphLine
}

// PanelRow is a name/value pair in a summary panel
type PanelRow struct {
	Name  string
	Value string
}

// Panel is a titled summary block
type Panel struct {
	Title string
	Rows  []PanelRow
}

// EnemyLine is the HP readout of one enemy on the field
type EnemyLine struct {
	Name string
	HP   float64
	Text string
}

// Frame is everything a rendering surface needs to draw one overlay frame
type Frame struct {
	Visible        bool
	StreamerBanner string

	TotalDamage   float64
	ActionValue   float64
	CurrentWaveAV float64

	Pie    []PieShape
	Legend []LegendLine

	Bars       []BarShape
	LabelWidth int

	Graph   Graph
	Panels  []Panel
	Enemies []EnemyLine

	// FormatValue is the y-axis formatter for damage values
	FormatValue func(float64) string
	// FormatLabel wraps a combatant name for the bar chart x axis
	FormatLabel func(string) string
}

// HasData reports whether the frame has any combatant to show
func (f *Frame) HasData() bool {
	return f != nil && len(f.Legend) > 0
}

// InteractionState is the UI state owned by the overlay loop
type InteractionState struct {
	ShowHelp      bool
	LayoutStyle   int    // 0: full, 1: minimal
	StatusMessage string // shown under the frame until the next key press
	Waiting       bool   // no snapshot has been read yet
}

// LayoutParam carries per-render settings to a layout strategy
type LayoutParam struct {
	Width       int
	Title       string
	WaitingText string
	HelpText    string
	Status      string
}
